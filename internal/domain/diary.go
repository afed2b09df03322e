package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptySymptom is returned when a diary entry has no symptom name.
	ErrEmptySymptom = errors.New("symptom is required")
	// ErrInvalidSeverity is returned when a diary severity is outside 1-10.
	ErrInvalidSeverity = errors.New("severity must be between 1 and 10")
)

// DiaryEntry is one self-reported symptom observation.
type DiaryEntry struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Symptom  string    `json:"symptom"`
	Severity int       `json:"severity"`
	Notes    string    `json:"notes,omitempty"`
}

// Diary is an append-only, in-memory symptom log. The matcher never reads it.
type Diary struct {
	mu      sync.RWMutex
	entries []DiaryEntry
}

// NewDiary creates an empty diary.
func NewDiary() *Diary {
	return &Diary{}
}

// Append validates and records an entry stamped with the current time.
func (d *Diary) Append(symptom string, severity int, notes string) (DiaryEntry, error) {
	symptom = strings.TrimSpace(symptom)
	if symptom == "" {
		return DiaryEntry{}, ErrEmptySymptom
	}
	if severity < 1 || severity > 10 {
		return DiaryEntry{}, fmt.Errorf("%w: got %d", ErrInvalidSeverity, severity)
	}

	entry := DiaryEntry{
		ID:       uuid.NewString(),
		Date:     clock.Now().UTC(),
		Symptom:  symptom,
		Severity: severity,
		Notes:    strings.TrimSpace(notes),
	}

	d.mu.Lock()
	d.entries = append(d.entries, entry)
	d.mu.Unlock()
	return entry, nil
}

// Entries returns a copy of the log in insertion order.
func (d *Diary) Entries() []DiaryEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]DiaryEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of entries.
func (d *Diary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// DiaryBook holds one diary per session.
type DiaryBook struct {
	mu      sync.Mutex
	diaries map[string]*Diary
}

// NewDiaryBook creates an empty book.
func NewDiaryBook() *DiaryBook {
	return &DiaryBook{diaries: make(map[string]*Diary)}
}

// For returns the diary of session, creating it on first use.
func (b *DiaryBook) For(session string) *Diary {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.diaries[session]
	if !ok {
		d = NewDiary()
		b.diaries[session] = d
	}
	return d
}
