package models

import "gorm.io/gorm"

// Game represents a catalog game. MobyID is the external catalog identifier
// and the natural key; the row is shared by every user who logs the game.
// A Game is immutable once created: later adds never refresh its fields.
type Game struct {
	gorm.Model
	MobyID      int64   `gorm:"uniqueIndex;not null"`
	Title       string  `gorm:"size:255;not null"`
	Platform    string  `gorm:"size:255;not null;default:'Unknown Platform'"`
	ReleaseDate *string `gorm:"size:255"` // free-form, as reported by the catalog
	ImageURL    *string `gorm:"size:512"`
}
