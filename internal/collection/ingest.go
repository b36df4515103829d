package collection

import (
	"errors"
	"strings"
	"time"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/models"

	"gorm.io/gorm"
)

// Principal is the authenticated identity the ingestion rule trusts. Email
// is the User natural key; name and avatar are optional provider hints used
// only when a User row is created lazily.
type Principal struct {
	Email     string
	Name      *string
	AvatarURL *string
}

// AddGameInput is a candidate logged entry. Title and MobyID are required;
// everything else is optional and normalized before storage.
type AddGameInput struct {
	MobyID      int64
	Title       string
	Platform    string
	ReleaseDate *string
	ImageURL    *string
	PlayedAt    *time.Time
	Rating      *int
}

// AddGame applies the ingestion rule: validate, normalize, get-or-create the
// User and Game by their natural keys, then insert exactly one UserGame.
// A (user, game) pair that already exists fails with a duplicate error and
// performs no write.
func AddGame(db *gorm.DB, p Principal, in AddGameInput) (*models.UserGame, error) {
	if in.MobyID == 0 {
		return nil, apperr.Validation("gameId", "missing required game data")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title", "missing required game data")
	}

	platform := strings.TrimSpace(in.Platform)
	if platform == "" {
		platform = UnknownPlatform
	}

	user, err := GetOrCreateUser(db, p)
	if err != nil {
		return nil, err
	}

	game, err := getOrCreateGame(db, in, platform)
	if err != nil {
		return nil, err
	}

	var existing models.UserGame
	err = db.Where("user_id = ? AND game_id = ?", user.ID, game.ID).First(&existing).Error
	if err == nil {
		return nil, apperr.Duplicate("Game already in collection")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("failed to check collection", err)
	}

	entry := models.UserGame{
		UserID:   user.ID,
		GameID:   game.ID,
		AddedAt:  time.Now(),
		PlayedAt: in.PlayedAt,
		Rating:   NormalizeRating(in.Rating),
	}
	if err := db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent add of the same pair; the
			// storage constraint is authoritative.
			return nil, apperr.Duplicate("Game already in collection")
		}
		return nil, apperr.Internal("failed to add game to collection", err)
	}

	entry.User = *user
	entry.Game = *game
	return &entry, nil
}

// GetOrCreateUser resolves the User for a principal, creating the row on
// first contact. A uniqueness violation on create means a concurrent request
// created the row first; the stored row wins and is re-fetched.
func GetOrCreateUser(db *gorm.DB, p Principal) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", p.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("failed to look up user", err)
	}

	user = models.User{Email: p.Email, Name: p.Name, AvatarURL: p.AvatarURL}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("email = ?", p.Email).First(&user).Error; err != nil {
				return nil, apperr.Internal("failed to look up user", err)
			}
			return &user, nil
		}
		return nil, apperr.Internal("failed to create user", err)
	}
	return &user, nil
}

// getOrCreateGame resolves the Game by its catalog id. An existing Game is
// canonical: the incoming title, platform and image are discarded once any
// user has logged the same catalog id.
func getOrCreateGame(db *gorm.DB, in AddGameInput, platform string) (*models.Game, error) {
	var game models.Game
	err := db.Where("moby_id = ?", in.MobyID).First(&game).Error
	if err == nil {
		return &game, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("failed to look up game", err)
	}

	game = models.Game{
		MobyID:      in.MobyID,
		Title:       in.Title,
		Platform:    platform,
		ReleaseDate: in.ReleaseDate,
		ImageURL:    in.ImageURL,
	}
	if err := db.Create(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("moby_id = ?", in.MobyID).First(&game).Error; err != nil {
				return nil, apperr.Internal("failed to look up game", err)
			}
			return &game, nil
		}
		return nil, apperr.Internal("failed to create game", err)
	}
	return &game, nil
}
