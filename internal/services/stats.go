package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-journal/internal/logger"
	"github.com/sbilibin2017/mood-journal/internal/models"
)

// StatsReader provides the grouping aggregations the bundle is built from.
type StatsReader interface {
	ByDate(ctx context.Context, userID uuid.UUID) ([]models.DayStat, error)
	Distribution(ctx context.Context, userID uuid.UUID) (map[models.Mood]int64, error)
	Days(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// StatsService computes the statistics bundle. Everything is recomputed from
// the stored entries on every call; nothing is cached between requests.
type StatsService struct {
	repo StatsReader
	now  func() time.Time
}

// StatsOption configures a StatsService.
type StatsOption func(*StatsService)

// WithNow overrides the clock, used in tests to pin "today".
func WithNow(now func() time.Time) StatsOption {
	return func(s *StatsService) {
		s.now = now
	}
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo StatsReader, opts ...StatsOption) *StatsService {
	s := &StatsService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats assembles the full bundle for one user.
func (s *StatsService) Stats(ctx context.Context, userID uuid.UUID) (*models.MoodStats, error) {
	byDate, err := s.repo.ByDate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to aggregate moods by date", "user_id", userID, "error", err)
		return nil, err
	}

	rawDist, err := s.repo.Distribution(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to aggregate mood distribution", "user_id", userID, "error", err)
		return nil, err
	}

	days, err := s.repo.Days(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load mood days", "user_id", userID, "error", err)
		return nil, err
	}

	// Every category appears, zero-filled.
	distribution := make(map[models.Mood]int64, len(models.Moods))
	for _, m := range models.Moods {
		distribution[m] = rawDist[m]
	}

	today := models.Day(s.now())

	entryDays := make(map[string]struct{}, len(byDate))
	for _, d := range byDate {
		entryDays[d.Date] = struct{}{}
	}

	return &models.MoodStats{
		ByDate:       byDate,
		Distribution: distribution,
		Streak:       CalculateStreaks(days, models.FormatDay(today)),
		Last30:       ActivityWindow(entryDays, today, 30),
	}, nil
}

// CalculateStreaks computes the current and longest consecutive-day streaks
// from a list of YYYY-MM-DD strings. Duplicates and ordering do not matter;
// the list is deduplicated and sorted descending first. The current streak is
// anchored at today: if today has no entry it is zero, with no grace period.
// Day adjacency uses UTC calendar arithmetic throughout. Unparsable dates are
// skipped; the function never fails.
func CalculateStreaks(days []string, today string) models.Streak {
	seen := make(map[string]struct{}, len(days))
	uniq := make([]string, 0, len(days))
	parsed := make(map[string]time.Time, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		t, err := models.ParseDay(d)
		if err != nil {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
		parsed[d] = t
	}

	if len(uniq) == 0 {
		return models.Streak{}
	}

	// YYYY-MM-DD sorts lexically in date order.
	sort.Sort(sort.Reverse(sort.StringSlice(uniq)))

	consecutive := func(later, earlier string) bool {
		return parsed[later].AddDate(0, 0, -1).Equal(parsed[earlier])
	}

	currentStreak := 0
	for i, d := range uniq {
		if d != today {
			continue
		}
		currentStreak = 1
		for j := i + 1; j < len(uniq); j++ {
			if !consecutive(uniq[j-1], uniq[j]) {
				break
			}
			currentStreak++
		}
		break
	}

	longestStreak := 1
	run := 1
	for i := 1; i < len(uniq); i++ {
		if consecutive(uniq[i-1], uniq[i]) {
			run++
			if run > longestStreak {
				longestStreak = run
			}
		} else {
			run = 1
		}
	}

	return models.Streak{
		CurrentStreak: currentStreak,
		LongestStreak: longestStreak,
	}
}

// ActivityWindow builds the fixed-size activity bitmap for the n calendar
// days ending today inclusive, oldest first.
func ActivityWindow(entryDays map[string]struct{}, today time.Time, n int) []models.ActivityDay {
	window := make([]models.ActivityDay, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := models.FormatDay(today.AddDate(0, 0, -i))
		hasEntry := 0
		if _, ok := entryDays[day]; ok {
			hasEntry = 1
		}
		window = append(window, models.ActivityDay{Date: day, HasEntry: hasEntry})
	}
	return window
}
