package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Mood is one of the six fixed mood categories.
type Mood string

// The closed set of mood categories. Validated at the boundary; the database
// never sees any other value.
const (
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
	MoodExcited  Mood = "excited"
	MoodTired    Mood = "tired"
)

// Moods lists every category in a stable order, used for zero-filling the
// distribution.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodStressed, MoodExcited, MoodTired}

// MaxNoteLength bounds the optional free-text note.
const MaxNoteLength = 300

var (
	ErrInvalidMood = errors.New("mood must be one of: happy, neutral, sad, stressed, excited, tired")
	ErrNoteTooLong = fmt.Errorf("note cannot exceed %d characters", MaxNoteLength)
)

// ParseMood validates a raw category string.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	for _, known := range Moods {
		if m == known {
			return m, nil
		}
	}
	return "", ErrInvalidMood
}

// ValidateNote enforces the note length bound.
func ValidateNote(note string) error {
	if len(note) > MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}

// MoodDB represents a mood entry record in the database.
// Date carries a pure calendar day (midnight UTC); grouping and streak math
// depend on it having no time-of-day component.
type MoodDB struct {
	MoodID    uuid.UUID `db:"mood_id"`    // Primary key
	UserID    uuid.UUID `db:"user_id"`    // Owning user
	Mood      Mood      `db:"mood"`       // Category
	Note      *string   `db:"note"`       // Optional free-text note
	Date      time.Time `db:"date"`       // Calendar day, midnight UTC
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `db:"updated_at"` // Last update timestamp
}

// MoodFilter narrows a mood listing. Nil fields are ignored.
type MoodFilter struct {
	From *time.Time // inclusive lower day bound
	To   *time.Time // inclusive upper day bound
	Mood *Mood
}

// MoodUpdate carries a partial update. Nil fields keep their stored value.
type MoodUpdate struct {
	Mood *Mood
	Note *string
	Date *time.Time
}

// Pagination describes one page of a mood listing.
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// NewPagination derives page metadata from a total row count.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: int64(page*limit) < total,
		HasPrev: page > 1,
	}
}
