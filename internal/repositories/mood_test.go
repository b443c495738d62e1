package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-journal/internal/middlewares"
	"github.com/sbilibin2017/mood-journal/internal/models"
	"github.com/stretchr/testify/assert"
)

func createTestUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()
	userID, err := NewUserWriteRepository(db).Save(context.Background(), username, username+"@example.com", "hash")
	assert.NoError(t, err)
	return userID
}

func createTestMood(t *testing.T, repo *MoodWriteRepository, userID uuid.UUID, category models.Mood, day string) *models.MoodDB {
	t.Helper()
	date, err := models.ParseDay(day)
	assert.NoError(t, err)
	mood := &models.MoodDB{
		MoodID: uuid.New(),
		UserID: userID,
		Mood:   category,
		Date:   date,
	}
	assert.NoError(t, repo.Create(context.Background(), mood))
	return mood
}

func TestMoodWriteRepository_Create(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "alice")
	writeRepo := NewMoodWriteRepository(db)
	readRepo := NewMoodReadRepository(db)
	ctx := context.Background()

	note := "walked in the park"
	date, _ := models.ParseDay("2025-10-20")
	mood := &models.MoodDB{
		MoodID: uuid.New(),
		UserID: userID,
		Mood:   models.MoodHappy,
		Note:   &note,
		Date:   date,
	}

	err := writeRepo.Create(ctx, mood)
	assert.NoError(t, err)
	assert.False(t, mood.CreatedAt.IsZero())
	assert.False(t, mood.UpdatedAt.IsZero())

	stored, err := readRepo.GetByID(ctx, userID, mood.MoodID)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, models.MoodHappy, stored.Mood)
	assert.NotNil(t, stored.Note)
	assert.Equal(t, note, *stored.Note)
	assert.Equal(t, "2025-10-20", models.FormatDay(stored.Date))

	t.Run("missing id is generated", func(t *testing.T) {
		m := &models.MoodDB{UserID: userID, Mood: models.MoodTired, Date: date}
		assert.NoError(t, writeRepo.Create(ctx, m))
		assert.NotEqual(t, uuid.Nil, m.MoodID)
	})

	t.Run("duplicate day is allowed", func(t *testing.T) {
		m := &models.MoodDB{MoodID: uuid.New(), UserID: userID, Mood: models.MoodSad, Date: date}
		assert.NoError(t, writeRepo.Create(ctx, m))
	})
}

func TestMoodReadRepository_GetByID_OwnerScoped(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := createTestUser(t, db, "alice")
	mallory := createTestUser(t, db, "mallory")
	writeRepo := NewMoodWriteRepository(db)
	readRepo := NewMoodReadRepository(db)
	ctx := context.Background()

	mood := createTestMood(t, writeRepo, alice, models.MoodHappy, "2025-10-20")

	t.Run("owner sees the entry", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, alice, mood.MoodID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("another user does not", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, mallory, mood.MoodID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMoodReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	writeRepo := NewMoodWriteRepository(db)
	readRepo := NewMoodReadRepository(db)
	ctx := context.Background()

	createTestMood(t, writeRepo, alice, models.MoodHappy, "2025-10-18")
	createTestMood(t, writeRepo, alice, models.MoodSad, "2025-10-19")
	createTestMood(t, writeRepo, alice, models.MoodHappy, "2025-10-20")
	createTestMood(t, writeRepo, bob, models.MoodTired, "2025-10-20")

	t.Run("only own entries, newest day first", func(t *testing.T) {
		moods, total, err := readRepo.List(ctx, alice, models.MoodFilter{}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, moods, 3)
		assert.Equal(t, "2025-10-20", models.FormatDay(moods[0].Date))
		assert.Equal(t, "2025-10-18", models.FormatDay(moods[2].Date))
	})

	t.Run("pagination", func(t *testing.T) {
		moods, total, err := readRepo.List(ctx, alice, models.MoodFilter{}, 2, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, moods, 1)
	})

	t.Run("date range filter", func(t *testing.T) {
		from, _ := models.ParseDay("2025-10-19")
		to, _ := models.ParseDay("2025-10-19")
		moods, total, err := readRepo.List(ctx, alice, models.MoodFilter{From: &from, To: &to}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, moods, 1)
		assert.Equal(t, models.MoodSad, moods[0].Mood)
	})

	t.Run("category filter", func(t *testing.T) {
		category := models.MoodHappy
		moods, total, err := readRepo.List(ctx, alice, models.MoodFilter{Mood: &category}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, moods, 2)
	})

	t.Run("empty result", func(t *testing.T) {
		moods, total, err := readRepo.List(ctx, uuid.New(), models.MoodFilter{}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, moods)
	})
}

func TestMoodWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := createTestUser(t, db, "alice")
	mallory := createTestUser(t, db, "mallory")
	writeRepo := NewMoodWriteRepository(db)
	ctx := context.Background()

	mood := createTestMood(t, writeRepo, alice, models.MoodNeutral, "2025-10-20")

	t.Run("partial update", func(t *testing.T) {
		note := "turned out fine"
		updated, err := writeRepo.Update(ctx, alice, mood.MoodID, models.MoodUpdate{Note: &note})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, models.MoodNeutral, updated.Mood)
		assert.NotNil(t, updated.Note)
		assert.Equal(t, note, *updated.Note)
		assert.Equal(t, "2025-10-20", models.FormatDay(updated.Date))
	})

	t.Run("update all fields", func(t *testing.T) {
		category := models.MoodExcited
		note := "big news"
		date, _ := models.ParseDay("2025-10-21")
		updated, err := writeRepo.Update(ctx, alice, mood.MoodID, models.MoodUpdate{
			Mood: &category,
			Note: &note,
			Date: &date,
		})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, models.MoodExcited, updated.Mood)
		assert.Equal(t, "2025-10-21", models.FormatDay(updated.Date))
	})

	t.Run("another user's entry is untouchable", func(t *testing.T) {
		note := "hijacked"
		updated, err := writeRepo.Update(ctx, mallory, mood.MoodID, models.MoodUpdate{Note: &note})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("missing entry", func(t *testing.T) {
		note := "nothing here"
		updated, err := writeRepo.Update(ctx, alice, uuid.New(), models.MoodUpdate{Note: &note})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestMoodWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := createTestUser(t, db, "alice")
	mallory := createTestUser(t, db, "mallory")
	writeRepo := NewMoodWriteRepository(db)
	readRepo := NewMoodReadRepository(db)
	ctx := context.Background()

	mood := createTestMood(t, writeRepo, alice, models.MoodStressed, "2025-10-20")

	t.Run("another user's delete is a no-op", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, mallory, mood.MoodID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("owner deletes", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, alice, mood.MoodID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		got, err := readRepo.GetByID(ctx, alice, mood.MoodID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("second delete reports nothing removed", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, alice, mood.MoodID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestMoodWriteRepository_UsesContextTransaction(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	alice := createTestUser(t, db, "alice")
	writeRepo := NewMoodWriteRepository(db)
	readRepo := NewMoodReadRepository(db)
	ctx := context.Background()

	date, _ := models.ParseDay("2025-10-20")

	tx, err := db.Beginx()
	assert.NoError(t, err)

	txCtx := middlewares.SetTxToContext(ctx, tx)
	mood := &models.MoodDB{MoodID: uuid.New(), UserID: alice, Mood: models.MoodHappy, Date: date}
	assert.NoError(t, writeRepo.Create(txCtx, mood))

	// Rolled back writes never become visible.
	assert.NoError(t, tx.Rollback())

	got, err := readRepo.GetByID(ctx, alice, mood.MoodID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
