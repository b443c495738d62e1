package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/mood-journal/internal/models"
)

// UserPayload is the public user shape returned by the auth endpoints.
// swagger:model UserPayload
type UserPayload struct {
	// User id
	ID string `json:"id"`
	// Username
	Username string `json:"username"`
	// Email
	Email string `json:"email"`
}

func toUserPayload(user *models.UserDB) UserPayload {
	return UserPayload{
		ID:       user.UserID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}

// MoodPayload is the public mood entry shape.
// swagger:model MoodPayload
type MoodPayload struct {
	// Mood entry id
	ID string `json:"id"`
	// Mood category
	Mood string `json:"mood"`
	// Optional note
	Note *string `json:"note"`
	// Calendar day YYYY-MM-DD
	Date string `json:"date"`
	// Creation timestamp
	CreatedAt string `json:"createdAt"`
	// Last update timestamp
	UpdatedAt string `json:"updatedAt"`
}

func toMoodPayload(mood *models.MoodDB) MoodPayload {
	return MoodPayload{
		ID:        mood.MoodID.String(),
		Mood:      string(mood.Mood),
		Note:      mood.Note,
		Date:      models.FormatDay(mood.Date),
		CreatedAt: mood.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: mood.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// writeData writes the success half of the envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.Envelope{OK: true, Data: data})
}

// writeError writes the failure half of the envelope with a stable code.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.Envelope{
		OK:    false,
		Error: &models.APIError{Code: code, Message: message},
	})
}

// writeJSON writes a bare (non-enveloped) body, used by the auth endpoints.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
