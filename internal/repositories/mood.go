package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/middlewares"
	"github.com/sbilibin2017/mood-journal/internal/models"
)

type MoodReadRepository struct {
	db *sqlx.DB
}

func NewMoodReadRepository(db *sqlx.DB) *MoodReadRepository {
	return &MoodReadRepository{db: db}
}

// GetByID returns the mood entry, or nil when it does not exist or is owned
// by another user.
func (r *MoodReadRepository) GetByID(ctx context.Context, userID, moodID uuid.UUID) (*models.MoodDB, error) {
	const query = `
		SELECT mood_id, user_id, mood, note, date, created_at, updated_at
		FROM moods
		WHERE mood_id = $1 AND user_id = $2
	`

	var mood models.MoodDB
	err := r.db.GetContext(ctx, &mood, query, moodID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{moodID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &mood, nil
}

// List returns one page of the user's entries, newest day first, together
// with the total count matching the filter.
func (r *MoodReadRepository) List(ctx context.Context, userID uuid.UUID, filter models.MoodFilter, page, limit int) ([]models.MoodDB, int64, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}
	if filter.Mood != nil {
		args = append(args, *filter.Mood)
		where = append(where, fmt.Sprintf("mood = $%d", len(args)))
	}

	countQuery := "SELECT COUNT(*) FROM moods WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Errorw("failed to count moods", "query", countQuery, "error", err)
		return nil, 0, err
	}

	listArgs := append(args, limit, (page-1)*limit)
	listQuery := fmt.Sprintf(`
		SELECT mood_id, user_id, mood, note, date, created_at, updated_at
		FROM moods
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, strings.Join(where, " AND "), len(args)+1, len(args)+2)

	moods := []models.MoodDB{}
	err := r.db.SelectContext(ctx, &moods, listQuery, listArgs...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(listQuery), " "),
		"args", listArgs,
		"result", len(moods),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return moods, total, nil
}

type MoodWriteRepository struct {
	db *sqlx.DB
}

func NewMoodWriteRepository(db *sqlx.DB) *MoodWriteRepository {
	return &MoodWriteRepository{db: db}
}

// ext returns the context transaction when TxMiddleware provided one.
func (r *MoodWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Create inserts a new mood entry and fills in the generated id and
// timestamps.
func (r *MoodWriteRepository) Create(ctx context.Context, mood *models.MoodDB) error {
	const query = `
		INSERT INTO moods (mood_id, user_id, mood, note, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if mood.MoodID == uuid.Nil {
		mood.MoodID = uuid.New()
	}
	args := []any{mood.MoodID, mood.UserID, mood.Mood, mood.Note, mood.Date}

	err := sqlx.GetContext(ctx, r.ext(ctx), mood, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update applies a partial update to an owned entry and returns the updated
// record, or nil when the entry does not exist or is owned by another user.
func (r *MoodWriteRepository) Update(ctx context.Context, userID, moodID uuid.UUID, upd models.MoodUpdate) (*models.MoodDB, error) {
	const query = `
		UPDATE moods
		SET mood = COALESCE($3::VARCHAR, mood),
		    note = COALESCE($4::VARCHAR, note),
		    date = COALESCE($5::DATE, date),
		    updated_at = NOW()
		WHERE mood_id = $1 AND user_id = $2
		RETURNING mood_id, user_id, mood, note, date, created_at, updated_at
	`
	args := []any{moodID, userID, upd.Mood, upd.Note, upd.Date}

	var mood models.MoodDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &mood, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &mood, nil
}

// Delete removes an owned entry. Returns false when nothing was deleted.
func (r *MoodWriteRepository) Delete(ctx context.Context, userID, moodID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM moods
		WHERE mood_id = $1 AND user_id = $2
	`
	args := []any{moodID, userID}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
