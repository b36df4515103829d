package models

import "time"

// UserGame is the join record representing "this user has logged this game".
// The primary key is a composite of (UserID, GameID) so a user can log a
// given game at most once; the storage layer enforces the invariant even
// when two concurrent adds race.
type UserGame struct {
	UserID  uint      `gorm:"primaryKey"`
	GameID  uint      `gorm:"primaryKey"`
	AddedAt time.Time `gorm:"not null;index"`
	// PlayedAt is user-supplied and optional.
	PlayedAt *time.Time
	// Rating is 1-5; nil means unrated. A nil rating must never surface
	// as a zero-star rating.
	Rating *int

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
