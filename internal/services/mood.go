package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrMoodNotFound is returned when an entry is absent or owned by another user.
	ErrMoodNotFound = errors.New("mood not found")
)

// MoodReader defines read operations for mood entries.
type MoodReader interface {
	GetByID(ctx context.Context, userID, moodID uuid.UUID) (*models.MoodDB, error)
	List(ctx context.Context, userID uuid.UUID, filter models.MoodFilter, page, limit int) ([]models.MoodDB, int64, error)
}

// MoodWriter defines write operations for mood entries.
type MoodWriter interface {
	Create(ctx context.Context, mood *models.MoodDB) error
	Update(ctx context.Context, userID, moodID uuid.UUID, upd models.MoodUpdate) (*models.MoodDB, error)
	Delete(ctx context.Context, userID, moodID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MoodEvent is published to Kafka after each successful mutation.
type MoodEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	MoodID    string `json:"mood_id"`
	Action    string `json:"action"` // created, updated, deleted
	Mood      string `json:"mood,omitempty"`
	Date      string `json:"date,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// MoodService handles owner-scoped mood CRUD and Kafka publishing.
type MoodService struct {
	readRepo    MoodReader
	writeRepo   MoodWriter
	kafkaWriter KafkaWriter
}

// NewMoodService creates a new MoodService. A nil Kafka writer disables
// event publishing.
func NewMoodService(readRepo MoodReader, writeRepo MoodWriter, kafkaWriter KafkaWriter) *MoodService {
	return &MoodService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a mood event to Kafka. Failures are logged, never
// surfaced to the caller.
func (s *MoodService) publishEvent(ctx context.Context, event MoodEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal mood event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish mood event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Mood event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}

func (s *MoodService) event(mood *models.MoodDB, action string) MoodEvent {
	return MoodEvent{
		EventID:   uuid.NewString(),
		UserID:    mood.UserID.String(),
		MoodID:    mood.MoodID.String(),
		Action:    action,
		Mood:      string(mood.Mood),
		Date:      models.FormatDay(mood.Date),
		Timestamp: time.Now().Unix(),
	}
}

// Create stores a new entry for the user and publishes a created event.
// The date must already be a pure calendar day.
func (s *MoodService) Create(ctx context.Context, userID uuid.UUID, category models.Mood, note *string, date time.Time) (*models.MoodDB, error) {
	mood := &models.MoodDB{
		MoodID: uuid.New(),
		UserID: userID,
		Mood:   category,
		Note:   note,
		Date:   models.Day(date),
	}

	if err := s.writeRepo.Create(ctx, mood); err != nil {
		logger.Log.Errorw("failed to create mood", "user_id", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, s.event(mood, "created"))

	return mood, nil
}

// Get returns one owned entry.
func (s *MoodService) Get(ctx context.Context, userID, moodID uuid.UUID) (*models.MoodDB, error) {
	mood, err := s.readRepo.GetByID(ctx, userID, moodID)
	if err != nil {
		logger.Log.Errorw("failed to get mood", "user_id", userID, "mood_id", moodID, "error", err)
		return nil, err
	}
	if mood == nil {
		return nil, ErrMoodNotFound
	}
	return mood, nil
}

// List returns one page of the user's entries with pagination metadata.
func (s *MoodService) List(ctx context.Context, userID uuid.UUID, filter models.MoodFilter, page, limit int) ([]models.MoodDB, models.Pagination, error) {
	moods, total, err := s.readRepo.List(ctx, userID, filter, page, limit)
	if err != nil {
		logger.Log.Errorw("failed to list moods", "user_id", userID, "error", err)
		return nil, models.Pagination{}, err
	}
	return moods, models.NewPagination(page, limit, total), nil
}

// Update applies a partial update to an owned entry and publishes an updated
// event.
func (s *MoodService) Update(ctx context.Context, userID, moodID uuid.UUID, upd models.MoodUpdate) (*models.MoodDB, error) {
	if upd.Date != nil {
		day := models.Day(*upd.Date)
		upd.Date = &day
	}

	mood, err := s.writeRepo.Update(ctx, userID, moodID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update mood", "user_id", userID, "mood_id", moodID, "error", err)
		return nil, err
	}
	if mood == nil {
		return nil, ErrMoodNotFound
	}

	s.publishEvent(ctx, s.event(mood, "updated"))

	return mood, nil
}

// Delete removes an owned entry and publishes a deleted event.
func (s *MoodService) Delete(ctx context.Context, userID, moodID uuid.UUID) error {
	mood, err := s.readRepo.GetByID(ctx, userID, moodID)
	if err != nil {
		logger.Log.Errorw("failed to get mood for delete", "user_id", userID, "mood_id", moodID, "error", err)
		return err
	}
	if mood == nil {
		return ErrMoodNotFound
	}

	deleted, err := s.writeRepo.Delete(ctx, userID, moodID)
	if err != nil {
		logger.Log.Errorw("failed to delete mood", "user_id", userID, "mood_id", moodID, "error", err)
		return err
	}
	if !deleted {
		return ErrMoodNotFound
	}

	s.publishEvent(ctx, s.event(mood, "deleted"))

	return nil
}
