package domain

import (
	"slices"
	"strings"
)

// glossary maps a lowercase medical term to a plain-language definition.
var glossary = map[string]string{
	"acute":        "Sudden onset, usually severe, of short duration.",
	"anemia":       "Condition where blood lacks enough healthy red blood cells.",
	"arrhythmia":   "Irregular heartbeat or abnormal heart rhythm.",
	"benign":       "Not cancerous, usually not harmful.",
	"biopsy":       "Removal of tissue for examination.",
	"chronic":      "Persisting over a long period of time.",
	"diagnosis":    "Identification of a medical condition or disease.",
	"dyspnea":      "Difficulty breathing or shortness of breath.",
	"edema":        "Swelling caused by excess fluid in body tissues.",
	"hypertension": "High blood pressure, a condition where the force of blood against artery walls is consistently too high.",
	"lesion":       "Area of damaged tissue.",
	"malignant":    "Cancerous, capable of spreading.",
	"myalgia":      "Muscle pain or muscle aches.",
	"nausea":       "Sensation of unease in the stomach with urge to vomit.",
	"prognosis":    "Likely course of a medical condition.",
	"tachycardia":  "Abnormally rapid heart rate.",
	"vertigo":      "A sensation of dizziness where you feel like you or your surroundings are spinning.",
}

// GlossaryEntry is one medical term and its definition.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// LookupTerm returns "<term>: <definition>" for the first whitespace-separated
// word of text that is a glossary term, or "" when none is.
func LookupTerm(text string) string {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if def, ok := glossary[word]; ok {
			return word + ": " + def
		}
	}
	return ""
}

// SearchTerms returns entries whose term or definition contains query,
// ignoring case, sorted by term. An empty query returns the whole glossary.
func SearchTerms(query string) []GlossaryEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	entries := make([]GlossaryEntry, 0, len(glossary))
	for term, def := range glossary {
		if strings.Contains(term, query) || strings.Contains(strings.ToLower(def), query) {
			entries = append(entries, GlossaryEntry{Term: term, Definition: def})
		}
	}
	slices.SortFunc(entries, func(a, b GlossaryEntry) int {
		return strings.Compare(a.Term, b.Term)
	})
	return entries
}
