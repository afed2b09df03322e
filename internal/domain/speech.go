package domain

import (
	"regexp"
	"strings"
)

var (
	bulletRe      = regexp.MustCompile(`[•\-]`)
	numberingRe   = regexp.MustCompile(`\d+\.`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	punctuationRe = regexp.MustCompile(`[^\w\s,.]`)
	sentenceRe    = regexp.MustCompile(`[.•]`)
)

// SpeechText turns a reply into narration-friendly sentences: list markers
// and numbering are dropped, whitespace is collapsed, symbols other than
// commas and periods are removed and sentences are joined with ". ".
// "/" reads as "out of" so a "5/10" severity is spoken sensibly.
func SpeechText(reply string) string {
	text := bulletRe.ReplaceAllString(reply, "")
	text = numberingRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "/", " out of ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = punctuationRe.ReplaceAllString(text, "")

	var sentences []string
	for _, s := range sentenceRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return strings.Join(sentences, ". ")
}
