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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (string, *models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful registration or login response
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	Token string `json:"token"`
	// User data
	User UserPayload `json:"user"`
}

// AuthErrorResponse represents an error response for the auth endpoints
// swagger:model AuthErrorResponse
type AuthErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with unique username and email. The password is hashed before storing; a 7-day token is returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.AuthResponse "Token and user data"
// @Failure 400 {object} handlers.AuthErrorResponse "Invalid request"
// @Failure 409 {object} handlers.AuthErrorResponse "Username or email already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, AuthErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			writeJSON(w, http.StatusBadRequest, AuthErrorResponse{Error: "Missing required fields"})
			return
		}
		for _, check := range []error{
			models.ValidateUsername(req.Username),
			models.ValidateEmail(req.Email),
			models.ValidatePassword(req.Password),
		} {
			if check != nil {
				writeJSON(w, http.StatusBadRequest, AuthErrorResponse{Error: check.Error()})
				return
			}
		}

		token, user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken),
				errors.Is(err, services.ErrEmailTaken):
				writeJSON(w, http.StatusConflict, AuthErrorResponse{Error: err.Error()})
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
