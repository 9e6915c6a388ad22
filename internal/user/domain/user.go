package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the user's business profile row, keyed by the auth user id.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Industry  string    `json:"industry"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate carries the profile fields a caller wants to change. Nil
// fields are left untouched on update and defaulted on insert.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Industry *string `json:"industry,omitempty"`
	Company  *string `json:"company,omitempty"`
}

// UserSettings is the single mutable settings row per user; saving always
// upserts on UserID.
type UserSettings struct {
	UserID    string            `json:"userId" gorm:"primaryKey;column:user_id"`
	Settings  datatypes.JSONMap `json:"settings" gorm:"column:settings;type:jsonb"`
	UpdatedAt time.Time         `json:"updatedAt" gorm:"column:updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultSettings is returned when a user has no stored settings and the
// store cannot be read.
func DefaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"notifications": true,
		"weeklyDigest":  true,
		"theme":         "light",
		"language":      "sv-SE",
	}
}
