package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/models"
)

// StatsRepository runs the grouping aggregations the statistics bundle is
// assembled from.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// ByDate returns per-day entry counts with the dominant mood for each day,
// newest day first. Dominant-mood ties break toward the category whose first
// entry of the day was created earliest.
func (r *StatsRepository) ByDate(ctx context.Context, userID uuid.UUID) ([]models.DayStat, error) {
	const query = `
		SELECT to_char(d.day, 'YYYY-MM-DD') AS date, d.count, t.mood AS top_mood
		FROM (
			SELECT date AS day, COUNT(*) AS count
			FROM moods
			WHERE user_id = $1
			GROUP BY date
		) d
		JOIN LATERAL (
			SELECT mood
			FROM moods
			WHERE user_id = $1 AND date = d.day
			GROUP BY mood
			ORDER BY COUNT(*) DESC, MIN(created_at) ASC
			LIMIT 1
		) t ON TRUE
		ORDER BY d.day DESC
	`

	stats := []models.DayStat{}
	err := r.db.SelectContext(ctx, &stats, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(stats),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Distribution returns raw per-category entry counts. Categories with no
// entries are absent; the service zero-fills them.
func (r *StatsRepository) Distribution(ctx context.Context, userID uuid.UUID) (map[models.Mood]int64, error) {
	const query = `
		SELECT mood, COUNT(*) AS count
		FROM moods
		WHERE user_id = $1
		GROUP BY mood
	`

	rows := []struct {
		Mood  models.Mood `db:"mood"`
		Count int64       `db:"count"`
	}{}
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	dist := make(map[models.Mood]int64, len(rows))
	for _, row := range rows {
		dist[row.Mood] = row.Count
	}

	return dist, nil
}

// Days returns every entry day for the user as YYYY-MM-DD strings, newest
// first. Duplicate days are kept; the streak engine deduplicates.
func (r *StatsRepository) Days(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const query = `
		SELECT to_char(date, 'YYYY-MM-DD') AS day
		FROM moods
		WHERE user_id = $1
		ORDER BY date DESC
	`

	days := []string{}
	err := r.db.SelectContext(ctx, &days, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(days),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return days, nil
}
