// Package domain models the disease reference dataset and the rule-based
// symptom matching engine built on top of it.
//
// # Data Source
//
// The knowledge base is assembled from four comma-separated tables, each with a
// header line that is discarded unconditionally:
//
//	dataset              Disease,Symptom_1,...,Symptom_17
//	symptom_Description  Disease,Description
//	symptom_precaution   Disease,Precaution_1,...,Precaution_4
//	Symptom-severity     Symptom,weight
//
// Rows are split on every comma with no quoting support. Description rows keep
// only the text between the first and second comma, so a description that
// contains a comma is truncated there. Symptom names are lowercased and
// trimmed; condition names are trimmed but keep their case.
//
// # Merge Semantics
//
// A condition may appear on many dataset rows (one per observed symptom
// combination). Rows are folded in file order: the first row creates the
// record and attaches its description and precautions, later rows only add
// symptoms not seen before. Enumeration order is first-appearance order and is
// the tie-break for equal scores.
//
// A condition with no description row has a nil Description; one with no
// precaution row has nil Precautions. Neither is rendered.
//
// # Matching
//
// User text is lowercased, stripped of one conversational phrase ("i have",
// "suffering from", ...) and collapsed into a key with whitespace, hyphens and
// underscores removed. A symptom matches when its collapsed form contains the
// key or the key contains it. Candidates are scored by the summed severity
// weight of their matched symptoms and the best two are reported.
//
// # Severity Label
//
// The report prints the score as "<score>/10". The score is an unbounded sum
// of weights, not a 0-10 value; the label is kept as-is for output
// compatibility with existing consumers.
package domain
