package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/middlewares"
	"github.com/sbilibin2017/mood-journal/internal/models"
)

// MoodCreator defines the interface that the mood creation service must implement.
type MoodCreator interface {
	Create(ctx context.Context, userID uuid.UUID, category models.Mood, note *string, date time.Time) (*models.MoodDB, error)
}

// CreateMoodRequest represents the JSON body for creating a mood entry
// swagger:model CreateMoodRequest
type CreateMoodRequest struct {
	// Mood category
	// required: true
	// default: happy
	Mood string `json:"mood"`

	// Optional note, up to 300 characters
	Note *string `json:"note"`

	// Calendar day YYYY-MM-DD, defaults to today (UTC)
	Date *string `json:"date"`
}

// NewCreateMoodHandler returns an HTTP handler that records a mood entry.
// @Summary Create a mood entry
// @Description Records a mood entry for the authenticated user. Multiple entries per day are allowed.
// @Tags moods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createMoodRequest body handlers.CreateMoodRequest true "Mood entry"
// @Success 201 {object} models.Envelope "Created entry"
// @Failure 400 {object} models.Envelope "Validation error"
// @Failure 401 {object} models.Envelope "Unauthorized"
// @Router /moods [post]
func NewCreateMoodHandler(svc MoodCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetAuthUserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, models.CodeUnauthorized, "Authentication required")
			return
		}

		var req CreateMoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, models.CodeValidationError, "Invalid request body")
			return
		}

		category, err := models.ParseMood(req.Mood)
		if err != nil {
			writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
			return
		}

		if req.Note != nil {
			if err := models.ValidateNote(*req.Note); err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
		}

		date := time.Now().UTC()
		if req.Date != nil {
			date, err = models.ParseDay(*req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
		}

		mood, err := svc.Create(r.Context(), user.UserID, category, req.Note, date)
		if err != nil {
			logger.Log.Errorw("failed to create mood", "err", err)
			writeError(w, http.StatusInternalServerError, models.CodeInternalError, "Failed to create mood")
			return
		}

		writeData(w, http.StatusCreated, toMoodPayload(mood))
	}
}
