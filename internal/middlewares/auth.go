package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/models"
)

// Tokener defines the credential operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// UserGetter resolves a user id to its stored record.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AuthMiddleware verifies the bearer credential on every request and attaches
// the resolved identity to the context. Missing credential, failed
// signature/expiry check, and a token referencing a deleted user all produce
// the same 401 envelope so callers cannot tell which check failed.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to load user for token", "user_id", userID, "err", err)
				writeUnauthorized(w)
				return
			}
			if user == nil {
				logger.Log.Errorw("token references unknown user", "user_id", userID)
				writeUnauthorized(w)
				return
			}

			authUser := &models.AuthUser{
				UserID:   user.UserID,
				Username: user.Username,
				Email:    user.Email,
			}

			next.ServeHTTP(w, r.WithContext(SetAuthUserToContext(ctx, authUser)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.Envelope{
		OK: false,
		Error: &models.APIError{
			Code:    models.CodeUnauthorized,
			Message: "Authentication required",
		},
	})
}

type authContextKey struct{}

var authUserKey = authContextKey{}

// SetAuthUserToContext stores the verified identity in the context.
func SetAuthUserToContext(ctx context.Context, user *models.AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// GetAuthUserFromContext retrieves the verified identity. Returns nil outside
// of AuthMiddleware.
func GetAuthUserFromContext(ctx context.Context) *models.AuthUser {
	user, _ := ctx.Value(authUserKey).(*models.AuthUser)
	return user
}
