package domain

import (
	"time"

	"github.com/google/uuid"
)

// Consultation is the event emitted after each answered turn.
type Consultation struct {
	ID         string           `json:"id"`
	Input      string           `json:"input"`
	Intent     Intent           `json:"intent"`
	Conditions []ConditionScore `json:"conditions"`
	Emergency  bool             `json:"emergency"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewConsultation records reply as an event stamped with the current time.
func NewConsultation(input string, reply Reply) Consultation {
	return Consultation{
		ID:         uuid.NewString(),
		Input:      input,
		Intent:     reply.Intent,
		Conditions: reply.Scores(),
		Emergency:  reply.Emergency,
		OccurredAt: clock.Now().UTC(),
	}
}
