package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		canonical string
		key       string
	}{
		{name: "strips leading phrase", input: "I have a headache", canonical: "a headache", key: "aheadache"},
		{name: "longer phrase", input: "I am feeling dizzy", canonical: "dizzy", key: "dizzy"},
		{name: "phrase removed mid-sentence", input: "lately i feel tired", canonical: "lately  tired", key: "latelytired"},
		{name: "only one phrase removed", input: "i have been suffering from cough", canonical: "been suffering from cough", key: "beensufferingfromcough"},
		{name: "no phrase", input: "  Skin-Rash ", canonical: "skin-rash", key: "skinrash"},
		{name: "underscores and tabs collapse", input: "high_fever\tand chills", canonical: "high_fever\tand chills", key: "highfeverandchills"},
		{name: "experiencing", input: "Experiencing joint pain", canonical: "joint pain", key: "jointpain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Normalize(tt.input)
			assert.Equal(t, tt.canonical, q.Canonical)
			assert.Equal(t, tt.key, q.Key)
		})
	}
}

func TestCollapseKey(t *testing.T) {
	assert.Equal(t, "dischromicpatches", CollapseKey("dischromic _patches"))
	assert.Equal(t, "skinrash", CollapseKey("Skin - Rash"))
	assert.Equal(t, "", CollapseKey(" _-\n"))
}
