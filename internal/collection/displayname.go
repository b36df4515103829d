package collection

import (
	"strings"
	"unicode/utf8"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/models"

	"gorm.io/gorm"
)

// MaxDisplayNameLength is the longest display name accepted after trimming.
const MaxDisplayNameLength = 50

// ValidateDisplayName trims a candidate display name and rejects empty or
// overlong values.
func ValidateDisplayName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", apperr.Validation("displayName", "Display name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxDisplayNameLength {
		return "", apperr.Validation("displayName", "Display name must be 50 characters or less")
	}
	return trimmed, nil
}

// UpdateDisplayName validates and stores a display name for the principal,
// creating the User lazily if this is their first action. The new value
// replaces the old one unconditionally; repeating the call with the same
// input yields the same stored value.
func UpdateDisplayName(db *gorm.DB, p Principal, raw string) (*models.User, error) {
	name, err := ValidateDisplayName(raw)
	if err != nil {
		return nil, err
	}

	user, err := GetOrCreateUser(db, p)
	if err != nil {
		return nil, err
	}

	if err := db.Model(user).Update("display_name", name).Error; err != nil {
		return nil, apperr.Internal("failed to update display name", err)
	}
	user.DisplayName = &name
	return user, nil
}
