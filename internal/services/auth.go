package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("user with this username already exists")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrInvalidToken       = errors.New("invalid authentication token")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for issuing and resolving tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AttemptTracker counts failed login attempts per email.
type AttemptTracker interface {
	Incr(ctx context.Context, email string) (int64, error)
	Reset(ctx context.Context, email string) error
}

// AuthService handles registration, login, and token verification.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	attempts    AttemptTracker
	maxAttempts int64
}

// NewAuthService creates a new AuthService instance. A nil attempts tracker
// disables login throttling.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, attempts AttemptTracker, maxAttempts int64) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		attempts:    attempts,
		maxAttempts: maxAttempts,
	}
}

// Register creates a new user and returns a signed token with the stored
// record. The email is normalized to lower case before storage.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (string, *models.UserDB, error) {
	email = strings.ToLower(email)

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return "", nil, ErrEmailTaken
		}
		return "", nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, &models.UserDB{
		UserID:   userID,
		Username: username,
		Email:    email,
	}, nil
}

// Login authenticates a user by email and returns a signed token. A missing
// user and a wrong password are indistinguishable to the caller. Repeated
// failures inside the attempt window are throttled.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	email = strings.ToLower(email)

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		if throttled, terr := svc.recordFailure(ctx, email); terr == nil && throttled {
			return "", nil, ErrTooManyAttempts
		}
		return "", nil, ErrInvalidCredentials
	}

	if svc.attempts != nil {
		if err := svc.attempts.Reset(ctx, email); err != nil {
			logger.Log.Errorw("failed to reset login attempts", "email", email, "err", err)
		}
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// recordFailure bumps the failure counter and reports whether the caller is
// over the limit. Tracker errors only disable throttling for this attempt.
func (svc *AuthService) recordFailure(ctx context.Context, email string) (bool, error) {
	if svc.attempts == nil {
		return false, nil
	}
	count, err := svc.attempts.Incr(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to record login attempt", "email", email, "err", err)
		return false, err
	}
	return count > svc.maxAttempts, nil
}

// Verify resolves a raw token string to the user it asserts. Signature and
// expiry are re-checked on every call; no result is cached.
func (svc *AuthService) Verify(ctx context.Context, tokenString string) (*models.UserDB, error) {
	userID, err := svc.jwt.GetUserID(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("token verification failed", "err", err)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
