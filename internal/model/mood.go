package model

import "time"

// Intensity is how strongly a mood is felt.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Valid reports whether i is one of the three known intensities.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// MaxNoteLength caps the free-text note on a mood entry.
const MaxNoteLength = 500

// MoodEntry is one logged mood. The author's name, icon, and color are
// denormalized at write time so the feed renders without a directory lookup.
// Entries are immutable once created; the ledger only supports append,
// list, and clear-all.
type MoodEntry struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName"`
	UserIcon  string     `json:"userIcon"`
	UserColor string     `json:"userColor"`
	Mood      string     `json:"mood"`
	Intensity *Intensity `json:"intensity,omitempty"`
	Note      *string    `json:"note,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewMoodEntry is the mutable input to Ledger.AppendMood. The store assigns
// the id and timestamp.
type NewMoodEntry struct {
	UserID    string
	UserName  string
	UserIcon  string
	UserColor string
	Mood      string
	Intensity *Intensity
	Note      *string
}
