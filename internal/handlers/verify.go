package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"github.com/sbilibin2017/mood-journal/internal/services"
)

// Verifier defines the interface that the token verification service must implement.
type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// VerifyResponse represents a successful token verification response
// swagger:model VerifyResponse
type VerifyResponse struct {
	// User data
	User UserPayload `json:"user"`
}

// NewVerifyHandler returns an HTTP handler for token verification.
// @Summary Verify a bearer token
// @Description Checks the token signature and expiry and returns the user it asserts
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.VerifyResponse "User data"
// @Failure 401 {object} handlers.AuthErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.AuthErrorResponse "User not found"
// @Router /auth/verify [post]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			writeJSON(w, http.StatusUnauthorized, AuthErrorResponse{Error: "Authorization token required"})
			return
		}

		user, err := svc.Verify(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				writeJSON(w, http.StatusUnauthorized, AuthErrorResponse{Error: "Invalid token"})
			case errors.Is(err, services.ErrUserNotFound):
				writeJSON(w, http.StatusNotFound, AuthErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, AuthErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, VerifyResponse{User: toUserPayload(user)})
	}
}
