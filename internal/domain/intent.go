package domain

import "strings"

// Intent classifies a user turn.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentFarewell  Intent = "farewell"
	IntentWellbeing Intent = "how_are_you"
	IntentIdentity  Intent = "identity"
	IntentHelp      Intent = "help"
	IntentGuidance  Intent = "what_should_i_do"
	IntentSymptom   Intent = "symptom"
)

type smallTalkRoute struct {
	intent  Intent
	phrases []string
	reply   string
}

// smallTalkRoutes are checked in order; the first list with a phrase contained
// in the input wins. Containment is plain substring, so "hi" also matches
// inside longer words.
var smallTalkRoutes = []smallTalkRoute{
	{
		intent:  IntentGreeting,
		phrases: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"},
		reply:   "Hello! I'm your medical assistant. How are you feeling today?",
	},
	{
		intent:  IntentFarewell,
		phrases: []string{"bye", "goodbye", "see you", "thanks", "thank you"},
		reply:   "Take care! Remember to consult a healthcare professional for proper medical advice.",
	},
	{
		intent:  IntentWellbeing,
		phrases: []string{"how are you", "how are you doing", "how do you do", "whats up", "what's up"},
		reply:   "I'm doing well, thank you! I'm here to help you with any health concerns. How can I assist you today?",
	},
	{
		intent:  IntentIdentity,
		phrases: []string{"who are you", "what are you"},
		reply:   "I'm a medical health assistant designed to help you understand symptoms and provide general health information. While I can offer guidance, please remember to consult healthcare professionals for proper medical advice.",
	},
	{
		intent:  IntentHelp,
		phrases: []string{"can you help", "i need help"},
		reply:   "Of course! I can help you understand symptoms, provide general health information, or guide you through emergency situations. What would you like to know about?",
	},
	{
		intent:  IntentGuidance,
		phrases: []string{"what should i do", "what can i do"},
		reply:   "I can help guide you better if you tell me specific symptoms or health concerns you're experiencing. What symptoms are you having?",
	},
}

// Route checks text against the small-talk phrase lists. It returns the
// matched intent and its canned reply, or ok=false when the turn should go to
// the symptom matcher.
func Route(text string) (intent Intent, reply string, ok bool) {
	text = strings.ToLower(text)
	for _, r := range smallTalkRoutes {
		for _, p := range r.phrases {
			if strings.Contains(text, p) {
				return r.intent, r.reply, true
			}
		}
	}
	return IntentSymptom, "", false
}
