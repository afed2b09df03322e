package domain

import (
	"cmp"
	"slices"
	"strings"
)

// MaxCandidates caps the number of conditions Match reports.
const MaxCandidates = 2

// Candidate is a condition with at least one symptom overlapping the query key.
type Candidate struct {
	Condition *ConditionRecord
	// Matched lists the overlapping symptoms in the condition's enumeration order.
	Matched []string
	Score   int
}

// Match returns the best MaxCandidates conditions for key.
func Match(key string, kb *KnowledgeBase) []Candidate {
	top, _ := matchWithTotal(key, kb)
	return top
}

// matchWithTotal returns the best MaxCandidates conditions for key and the
// number of candidates before the cut.
func matchWithTotal(key string, kb *KnowledgeBase) ([]Candidate, int) {
	ranked := Rank(key, kb)
	total := len(ranked)
	if total > MaxCandidates {
		ranked = ranked[:MaxCandidates]
	}
	return ranked, total
}

// Rank returns every candidate for key ordered by score, highest first.
// Equal scores keep knowledge base enumeration order. An empty key overlaps
// every symptom.
func Rank(key string, kb *KnowledgeBase) []Candidate {
	if kb.Len() == 0 {
		return nil
	}
	key = CollapseKey(key)

	var candidates []Candidate
	for _, c := range kb.conditions {
		matched := matchedSymptoms(key, c.Symptoms)
		if len(matched) == 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Condition: c,
			Matched:   matched,
			Score:     Score(matched, kb.severity),
		})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return candidates
}

// Score sums the severity weights of symptoms. Unknown symptoms weigh 0.
func Score(symptoms []string, severity *SeverityTable) int {
	total := 0
	for _, s := range symptoms {
		total += severity.Weight(s)
	}
	return total
}

// SymptomOverlaps is the bidirectional substring test between a collapsed
// query key and a symptom name.
func SymptomOverlaps(key, symptom string) bool {
	s := CollapseKey(symptom)
	return strings.Contains(s, key) || strings.Contains(key, s)
}

func matchedSymptoms(key string, symptoms []string) []string {
	var matched []string
	for _, s := range symptoms {
		if SymptomOverlaps(key, s) {
			matched = append(matched, s)
		}
	}
	return matched
}
