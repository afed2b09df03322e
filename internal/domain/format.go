package domain

import (
	"fmt"
	"slices"
	"strings"
)

// maxRelatedSymptoms caps the "Related Symptoms" list of each condition.
const maxRelatedSymptoms = 3

// NotFoundMessage is returned when no condition matches the input.
const NotFoundMessage = "• Error:\n" +
	"    - Symptom not recognized\n" +
	"    - Please try describing it differently\n" +
	"    - Example: headache, fever, cough"

// FormatReport renders ranked candidates for the canonical input. Sections are
// indented in steps (0, 2, 4 and 8 spaces) and separated by blank lines;
// consumers display the text verbatim in a monospace block.
func FormatReport(canonical string, ranked []Candidate) string {
	if len(ranked) == 0 {
		return NotFoundMessage
	}

	lines := []string{
		"• Symptom Detected: " + canonical,
		"",
		"• Possible Conditions:",
		"",
	}

	for i, c := range ranked {
		lines = append(lines, fmt.Sprintf("  %c. %s", rune('a'+i), c.Condition.Name), "")

		if d := cleanDescription(c.Condition.Description); d != "" {
			lines = append(lines,
				"    • Description:",
				"        - "+d,
				"",
			)
		}

		lines = append(lines,
			"    • Severity:",
			fmt.Sprintf("        - %d/10", c.Score),
			"",
		)

		if len(c.Condition.Precautions) > 0 {
			lines = append(lines, "    • Precautions:")
			for _, p := range c.Condition.Precautions {
				lines = append(lines, "        - "+p)
			}
			lines = append(lines, "")
		}

		if related := RelatedSymptoms(c, maxRelatedSymptoms); len(related) > 0 {
			lines = append(lines, "    • Related Symptoms:")
			for _, s := range related {
				lines = append(lines, "        - "+s)
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines,
		"• Next Steps:",
		"    - Share any other symptoms you're experiencing",
		"    - Consult a healthcare professional for proper diagnosis",
		"",
		"• Disclaimer:",
		"    - This is general guidance only",
		"    - Not a substitute for professional medical advice",
	)
	return strings.Join(lines, "\n")
}

// RelatedSymptoms returns up to limit symptoms of the candidate's condition
// that were not matched, with underscores shown as spaces.
func RelatedSymptoms(c Candidate, limit int) []string {
	var related []string
	for _, s := range c.Condition.Symptoms {
		if len(related) == limit {
			break
		}
		if slices.Contains(c.Matched, s) {
			continue
		}
		related = append(related, strings.ReplaceAll(s, "_", " "))
	}
	return related
}

// cleanDescription drops stray CSV quote characters.
func cleanDescription(d *string) string {
	if d == nil {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(*d, `"`, ""))
}
