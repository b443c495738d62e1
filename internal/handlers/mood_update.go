package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/middlewares"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"github.com/sbilibin2017/mood-journal/internal/services"
)

// MoodUpdater defines the interface that the mood update service must implement.
type MoodUpdater interface {
	Update(ctx context.Context, userID, moodID uuid.UUID, upd models.MoodUpdate) (*models.MoodDB, error)
}

// UpdateMoodRequest represents the JSON body for a partial mood update
// swagger:model UpdateMoodRequest
type UpdateMoodRequest struct {
	// Mood category
	Mood *string `json:"mood"`
	// Note, up to 300 characters
	Note *string `json:"note"`
	// Calendar day YYYY-MM-DD
	Date *string `json:"date"`
}

// NewUpdateMoodHandler returns an HTTP handler that applies a partial update.
// @Summary Update a mood entry
// @Description Updates category, note, and/or date of one of the authenticated user's entries
// @Tags moods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mood entry id"
// @Param updateMoodRequest body handlers.UpdateMoodRequest true "Fields to update"
// @Success 200 {object} models.Envelope "Updated entry"
// @Failure 400 {object} models.Envelope "Validation error"
// @Failure 401 {object} models.Envelope "Unauthorized"
// @Failure 404 {object} models.Envelope "Not found"
// @Router /moods/{id} [put]
func NewUpdateMoodHandler(svc MoodUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetAuthUserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, models.CodeUnauthorized, "Authentication required")
			return
		}

		moodID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, models.CodeNotFound, "Mood not found")
			return
		}

		var req UpdateMoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, models.CodeValidationError, "Invalid request body")
			return
		}

		var upd models.MoodUpdate
		if req.Mood != nil {
			category, err := models.ParseMood(*req.Mood)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
			upd.Mood = &category
		}
		if req.Note != nil {
			if err := models.ValidateNote(*req.Note); err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
			upd.Note = req.Note
		}
		if req.Date != nil {
			date, err := models.ParseDay(*req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
			upd.Date = &date
		}

		mood, err := svc.Update(r.Context(), user.UserID, moodID, upd)
		if err != nil {
			if errors.Is(err, services.ErrMoodNotFound) {
				writeError(w, http.StatusNotFound, models.CodeNotFound, "Mood not found")
				return
			}
			logger.Log.Errorw("failed to update mood", "err", err)
			writeError(w, http.StatusInternalServerError, models.CodeInternalError, "Failed to update mood")
			return
		}

		writeData(w, http.StatusOK, toMoodPayload(mood))
	}
}
