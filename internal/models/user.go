package models

import "gorm.io/gorm"

// User represents a user in the system. Email is the stable identity key;
// a row is created lazily on the first authenticated action and never deleted.
type User struct {
	gorm.Model
	Email        string  `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Name         *string `gorm:"size:255"` // provider-supplied, may be absent
	DisplayName  *string `gorm:"size:50"`
	AvatarURL    *string `gorm:"size:512"`
}

// PublicName resolves the name shown next to a user's games: display name if
// set, provider name otherwise, "Anonymous" as a last resort.
func (u *User) PublicName() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return "Anonymous"
}
