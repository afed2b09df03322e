package domain

import "strings"

var emergencyKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"stroke",
	"unconscious",
	"severe bleeding",
	"head injury",
	"seizure",
	"heart attack",
	"severe allergic reaction",
	"anaphylaxis",
	"suicide",
	"overdose",
}

// IsEmergency reports whether text mentions a symptom that needs emergency care.
func IsEmergency(text string) bool {
	text = strings.ToLower(text)
	for _, k := range emergencyKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// EmergencyContact is a phone number to call in an emergency.
type EmergencyContact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// EmergencyInfo lists warning signs that need immediate care and who to call.
type EmergencyInfo struct {
	WarningSigns []string           `json:"warning_signs"`
	Contacts     []EmergencyContact `json:"contacts"`
}

// EmergencyGuidance returns the static emergency information.
func EmergencyGuidance() EmergencyInfo {
	return EmergencyInfo{
		WarningSigns: []string{
			"Chest pain or pressure (possible heart attack)",
			"Difficulty breathing or shortness of breath",
			"Sudden severe headache",
			"Sudden confusion or difficulty speaking",
			"Fainting or loss of consciousness",
			"Severe bleeding",
			"Severe burns",
			"Seizures",
		},
		Contacts: []EmergencyContact{
			{Name: "Emergency Services", Number: "911"},
			{Name: "Poison Control", Number: "1-800-222-1222"},
		},
	}
}
