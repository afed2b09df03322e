package domain

import (
	"strings"
	"unicode"
)

// conversationalPrefixes are checked in order; only the first one found is removed.
var conversationalPrefixes = []string{
	"i have",
	"i am having",
	"i feel",
	"i am feeling",
	"experiencing",
	"suffering from",
}

// Query is normalized user input.
type Query struct {
	// Canonical is the lowercased input with one conversational phrase removed
	// and surrounding whitespace trimmed. It is shown back to the user.
	Canonical string
	// Key is Canonical with every separator removed. It is only used for matching.
	Key string
}

// Normalize lowercases raw and strips the first conversational phrase it
// contains. The phrase is removed wherever it occurs, not only at the start.
func Normalize(raw string) Query {
	text := strings.ToLower(raw)
	for _, p := range conversationalPrefixes {
		if strings.Contains(text, p) {
			text = strings.Replace(text, p, "", 1)
			break
		}
	}
	canonical := strings.TrimSpace(text)
	return Query{Canonical: canonical, Key: CollapseKey(canonical)}
}

// CollapseKey lowercases s and drops all whitespace, hyphens and underscores,
// so "Skin Rash", "skin_rash" and "skin-rash" share the key "skinrash".
func CollapseKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
