package domain

import "strings"

// Reply is the engine's answer to one user turn.
type Reply struct {
	Text   string
	Intent Intent
	// Query is the normalized input; zero for small-talk turns.
	Query Query
	// Candidates holds the reported conditions, at most MaxCandidates.
	Candidates []Candidate
	// TotalCandidates counts every matching condition before truncation.
	TotalCandidates int
	// Emergency is set when the input mentions an emergency symptom. It does
	// not change Text.
	Emergency bool
	// Definition is the glossary definition of the first medical term in the
	// input, if any.
	Definition string
}

// Scores returns name/score pairs of the reported candidates.
func (r Reply) Scores() []ConditionScore {
	out := make([]ConditionScore, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		out = append(out, ConditionScore{Name: c.Condition.Name, Score: c.Score})
	}
	return out
}

// ConditionScore is a reported condition and its aggregate severity score.
type ConditionScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Respond runs one turn: small talk is answered from canned replies,
// everything else is normalized, matched against kb and formatted.
// It is pure and safe to call concurrently.
func Respond(input string, kb *KnowledgeBase) Reply {
	text := strings.ToLower(input)
	reply := Reply{
		Emergency:  IsEmergency(text),
		Definition: LookupTerm(text),
	}

	if intent, canned, ok := Route(text); ok {
		reply.Intent = intent
		reply.Text = canned
		return reply
	}

	q := Normalize(text)
	ranked, total := matchWithTotal(q.Key, kb)

	reply.Intent = IntentSymptom
	reply.Query = q
	reply.TotalCandidates = total
	reply.Candidates = ranked
	reply.Text = FormatReport(q.Canonical, ranked)
	return reply
}
