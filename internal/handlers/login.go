package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"github.com/sbilibin2017/mood-journal/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user by email and password and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AuthResponse "Token and user data"
// @Failure 400 {object} handlers.AuthErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.AuthErrorResponse "Invalid credentials"
// @Failure 429 {object} handlers.AuthErrorResponse "Too many failed attempts"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, AuthErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Email == "" || req.Password == "" {
			writeJSON(w, http.StatusBadRequest, AuthErrorResponse{Error: "Email and password are required"})
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, AuthErrorResponse{Error: "Invalid credentials"})
			case errors.Is(err, services.ErrTooManyAttempts):
				writeJSON(w, http.StatusTooManyRequests, AuthErrorResponse{Error: "Too many failed login attempts, try again later"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, AuthErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Token: token,
			User:  toUserPayload(user),
		})
	}
}
