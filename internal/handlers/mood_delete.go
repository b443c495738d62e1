package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/middlewares"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"github.com/sbilibin2017/mood-journal/internal/services"
)

// MoodDeleter defines the interface that the mood deletion service must implement.
type MoodDeleter interface {
	Delete(ctx context.Context, userID, moodID uuid.UUID) error
}

// DeleteMoodData is the data payload of a successful deletion
// swagger:model DeleteMoodData
type DeleteMoodData struct {
	Deleted bool `json:"deleted"`
}

// NewDeleteMoodHandler returns an HTTP handler that deletes one entry by id.
// @Summary Delete a mood entry
// @Description Deletes one of the authenticated user's entries
// @Tags moods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mood entry id"
// @Success 200 {object} models.Envelope "Deletion confirmation"
// @Failure 401 {object} models.Envelope "Unauthorized"
// @Failure 404 {object} models.Envelope "Not found"
// @Router /moods/{id} [delete]
func NewDeleteMoodHandler(svc MoodDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), user.UserID, moodID); err != nil {
			if errors.Is(err, services.ErrMoodNotFound) {
				writeError(w, http.StatusNotFound, models.CodeNotFound, "Mood not found")
				return
			}
			logger.Log.Errorw("failed to delete mood", "err", err)
			writeError(w, http.StatusInternalServerError, models.CodeInternalError, "Failed to delete mood")
			return
		}

		writeData(w, http.StatusOK, DeleteMoodData{Deleted: true})
	}
}
