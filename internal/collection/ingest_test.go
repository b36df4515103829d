package collection

import (
	"testing"
	"time"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/database"
	"chaugames/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func chrono() AddGameInput {
	return AddGameInput{MobyID: 42, Title: "Chrono Trigger"}
}

var userA = Principal{Email: "a@example.com"}
var userB = Principal{Email: "b@example.com"}

func TestAddGame_CreatesUserGameAndEntry(t *testing.T) {
	db := newTestDB(t)

	entry, err := AddGame(db, userA, chrono())
	require.NoError(t, err)

	assert.Equal(t, "Chrono Trigger", entry.Game.Title)
	assert.Equal(t, UnknownPlatform, entry.Game.Platform)
	assert.Nil(t, entry.Rating)
	assert.Nil(t, entry.PlayedAt)
	assert.False(t, entry.AddedAt.IsZero())

	var userCount, gameCount, entryCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Game{}).Count(&gameCount)
	db.Model(&models.UserGame{}).Count(&entryCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), gameCount)
	assert.Equal(t, int64(1), entryCount)
}

func TestAddGame_MissingFields(t *testing.T) {
	db := newTestDB(t)

	_, err := AddGame(db, userA, AddGameInput{Title: "No ID"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = AddGame(db, userA, AddGameInput{MobyID: 7, Title: "   "})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Failed validation writes nothing.
	var entryCount int64
	db.Model(&models.UserGame{}).Count(&entryCount)
	assert.Equal(t, int64(0), entryCount)
}

func TestAddGame_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)

	_, err := AddGame(db, userA, chrono())
	require.NoError(t, err)

	_, err = AddGame(db, userA, chrono())
	assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))

	// The duplicate attempt mutates nothing.
	var entryCount int64
	db.Model(&models.UserGame{}).Count(&entryCount)
	assert.Equal(t, int64(1), entryCount)
}

func TestAddGame_SecondUserSharesGameRow(t *testing.T) {
	db := newTestDB(t)

	_, err := AddGame(db, userA, chrono())
	require.NoError(t, err)

	entry, err := AddGame(db, userB, chrono())
	require.NoError(t, err)

	var gameCount int64
	db.Model(&models.Game{}).Count(&gameCount)
	assert.Equal(t, int64(1), gameCount)
	assert.Equal(t, int64(42), entry.Game.MobyID)
}

func TestAddGame_ExistingGameIsCanonical(t *testing.T) {
	db := newTestDB(t)

	_, err := AddGame(db, userA, chrono())
	require.NoError(t, err)

	// A later add of the same catalog id carries different metadata; the
	// stored record wins and the incoming fields are discarded.
	img := "https://example.com/new-cover.png"
	entry, err := AddGame(db, userB, AddGameInput{
		MobyID:   42,
		Title:    "Chrono Trigger (DS)",
		Platform: "Nintendo DS",
		ImageURL: &img,
	})
	require.NoError(t, err)

	assert.Equal(t, "Chrono Trigger", entry.Game.Title)
	assert.Equal(t, UnknownPlatform, entry.Game.Platform)
	assert.Nil(t, entry.Game.ImageURL)
}

func TestAddGame_NormalizesRating(t *testing.T) {
	db := newTestDB(t)

	for i, rating := range []*int{nil, intPtr(0), intPtr(-1), intPtr(6), intPtr(100)} {
		in := AddGameInput{MobyID: int64(100 + i), Title: "Some Game", Rating: rating}
		entry, err := AddGame(db, userA, in)
		require.NoError(t, err)
		assert.Nil(t, entry.Rating, "rating %v must store as unrated", rating)
	}

	entry, err := AddGame(db, userA, AddGameInput{MobyID: 200, Title: "Rated Game", Rating: intPtr(5)})
	require.NoError(t, err)
	require.NotNil(t, entry.Rating)
	assert.Equal(t, 5, *entry.Rating)
}

func TestAddGame_KeepsPlayedAt(t *testing.T) {
	db := newTestDB(t)

	played := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in := chrono()
	in.PlayedAt = &played

	entry, err := AddGame(db, userA, in)
	require.NoError(t, err)
	require.NotNil(t, entry.PlayedAt)
	assert.True(t, entry.PlayedAt.Equal(played))
}

func TestGetOrCreateUser_ReusesExistingRow(t *testing.T) {
	db := newTestDB(t)

	first, err := GetOrCreateUser(db, userA)
	require.NoError(t, err)

	second, err := GetOrCreateUser(db, userA)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(1), userCount)
}

func TestNormalizeRating(t *testing.T) {
	assert.Nil(t, NormalizeRating(nil))
	assert.Nil(t, NormalizeRating(intPtr(0)))
	assert.Nil(t, NormalizeRating(intPtr(-3)))
	assert.Nil(t, NormalizeRating(intPtr(6)))

	for r := 1; r <= 5; r++ {
		got := NormalizeRating(intPtr(r))
		require.NotNil(t, got)
		assert.Equal(t, r, *got)
	}
}

func intPtr(v int) *int {
	return &v
}
