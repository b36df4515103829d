// Package collection implements the collection view engine: the ingestion,
// ordering and aggregation rules that turn a user's raw set of logged games
// into the views shown to end users.
package collection

import (
	"time"

	"chaugames/backend/internal/models"
)

// UnknownPlatform is stored when the caller supplies no platform name.
const UnknownPlatform = "Unknown Platform"

// Entry is one logged game projected for display: the join record flattened
// together with its Game and the owning user's public identity.
type Entry struct {
	GameID      uint
	MobyID      int64
	Title       string
	Platform    string
	ReleaseDate *string
	ImageURL    *string
	AddedAt     time.Time
	PlayedAt    *time.Time
	Rating      *int

	OwnerEmail string
	OwnerName  string
}

// NewEntry flattens a UserGame with its preloaded Game (and User, when the
// caller preloaded one) into an Entry.
func NewEntry(ug models.UserGame) Entry {
	return Entry{
		GameID:      ug.Game.ID,
		MobyID:      ug.Game.MobyID,
		Title:       ug.Game.Title,
		Platform:    ug.Game.Platform,
		ReleaseDate: ug.Game.ReleaseDate,
		ImageURL:    ug.Game.ImageURL,
		AddedAt:     ug.AddedAt,
		PlayedAt:    ug.PlayedAt,
		Rating:      ug.Rating,
		OwnerEmail:  ug.User.Email,
		OwnerName:   ug.User.PublicName(),
	}
}

// NewEntries flattens a slice of UserGames preserving order.
func NewEntries(ugs []models.UserGame) []Entry {
	entries := make([]Entry, len(ugs))
	for i, ug := range ugs {
		entries[i] = NewEntry(ug)
	}
	return entries
}

// NormalizeRating maps any value outside 1-5 inclusive, or an absent value,
// to nil ("unrated"). A zero is never stored as a zero-star rating.
func NormalizeRating(rating *int) *int {
	if rating == nil || *rating < 1 || *rating > 5 {
		return nil
	}
	r := *rating
	return &r
}
