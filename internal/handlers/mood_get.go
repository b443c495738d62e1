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

// MoodGetter defines the interface that the mood fetch service must implement.
type MoodGetter interface {
	Get(ctx context.Context, userID, moodID uuid.UUID) (*models.MoodDB, error)
}

// NewGetMoodHandler returns an HTTP handler that fetches one entry by id.
// @Summary Get a mood entry
// @Description Fetches one of the authenticated user's entries by id
// @Tags moods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mood entry id"
// @Success 200 {object} models.Envelope "Mood entry"
// @Failure 401 {object} models.Envelope "Unauthorized"
// @Failure 404 {object} models.Envelope "Not found"
// @Router /moods/{id} [get]
func NewGetMoodHandler(svc MoodGetter) http.HandlerFunc {
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

		mood, err := svc.Get(r.Context(), user.UserID, moodID)
		if err != nil {
			if errors.Is(err, services.ErrMoodNotFound) {
				writeError(w, http.StatusNotFound, models.CodeNotFound, "Mood not found")
				return
			}
			logger.Log.Errorw("failed to get mood", "err", err)
			writeError(w, http.StatusInternalServerError, models.CodeInternalError, "Failed to fetch mood")
			return
		}

		writeData(w, http.StatusOK, toMoodPayload(mood))
	}
}
