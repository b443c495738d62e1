package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/middlewares"
	"github.com/sbilibin2017/mood-journal/internal/models"
)

// MoodLister defines the interface that the mood listing service must implement.
type MoodLister interface {
	List(ctx context.Context, userID uuid.UUID, filter models.MoodFilter, page, limit int) ([]models.MoodDB, models.Pagination, error)
}

// MoodListData is the data payload of a mood listing response
// swagger:model MoodListData
type MoodListData struct {
	// Mood entries, newest day first
	Moods []MoodPayload `json:"moods"`
	// Pagination metadata
	Pagination models.Pagination `json:"pagination"`
}

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// NewListMoodsHandler returns an HTTP handler that lists the user's entries.
// @Summary List mood entries
// @Description Lists the authenticated user's entries with optional day range and category filters
// @Tags moods
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, capped at 100" default(20)
// @Param from query string false "Inclusive lower day bound YYYY-MM-DD"
// @Param to query string false "Inclusive upper day bound YYYY-MM-DD"
// @Param mood query string false "Mood category filter"
// @Success 200 {object} models.Envelope "Mood entries with pagination"
// @Failure 400 {object} models.Envelope "Validation error"
// @Failure 401 {object} models.Envelope "Unauthorized"
// @Router /moods [get]
func NewListMoodsHandler(svc MoodLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetAuthUserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, models.CodeUnauthorized, "Authentication required")
			return
		}

		q := r.URL.Query()

		page := defaultPage
		if v := q.Get("page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, "page must be a positive integer")
				return
			}
			page = n
		}

		limit := defaultLimit
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, "limit must be a positive integer")
				return
			}
			if n > maxLimit {
				n = maxLimit
			}
			limit = n
		}

		var filter models.MoodFilter
		if v := q.Get("from"); v != "" {
			from, err := models.ParseDay(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
			filter.From = &from
		}
		if v := q.Get("to"); v != "" {
			to, err := models.ParseDay(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
			filter.To = &to
		}
		if v := q.Get("mood"); v != "" {
			category, err := models.ParseMood(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.CodeValidationError, err.Error())
				return
			}
			filter.Mood = &category
		}

		moods, pagination, err := svc.List(r.Context(), user.UserID, filter, page, limit)
		if err != nil {
			logger.Log.Errorw("failed to list moods", "err", err)
			writeError(w, http.StatusInternalServerError, models.CodeInternalError, "Failed to fetch moods")
			return
		}

		payload := make([]MoodPayload, 0, len(moods))
		for i := range moods {
			payload = append(payload, toMoodPayload(&moods[i]))
		}

		writeData(w, http.StatusOK, MoodListData{
			Moods:      payload,
			Pagination: pagination,
		})
	}
}
