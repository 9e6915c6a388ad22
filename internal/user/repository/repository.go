package repository

import "affarsradar-backend/internal/user/domain"

// UserRepository defines the persistence contract for profiles and user
// settings.
type UserRepository interface {
	// GetProfile returns the profile for the given user id, or nil when no
	// row exists.
	GetProfile(userID string) (*domain.Profile, error)

	// CreateOrUpdateProfile applies the non-nil fields of update to an
	// existing profile, or inserts a new profile with defaults for absent
	// fields. Works in degraded mode when elevated store credentials are
	// missing.
	CreateOrUpdateProfile(userID string, update domain.ProfileUpdate) (*domain.Profile, error)

	// GetUserSettings returns the stored settings mapping; absence is not an
	// error and yields an empty mapping.
	GetUserSettings(userID string) (map[string]interface{}, error)

	// SaveUserSettings upserts the settings row for the user, overwriting
	// settings and updatedAt.
	SaveUserSettings(userID string, settings map[string]interface{}) (*domain.UserSettings, error)
}
