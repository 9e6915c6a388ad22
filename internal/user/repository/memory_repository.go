package repository

import (
	"sync"
	"time"

	"gorm.io/datatypes"

	"affarsradar-backend/internal/user/domain"
)

// memoryUserRepository is the test-mode UserRepository. Single-process use
// only.
type memoryUserRepository struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
	settings map[string]*domain.UserSettings
}

// NewMemoryUserRepository creates an empty in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		profiles: make(map[string]*domain.Profile),
		settings: make(map[string]*domain.UserSettings),
	}
}

func (r *memoryUserRepository) GetProfile(userID string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *memoryUserRepository) CreateOrUpdateProfile(userID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[userID]
	if !ok {
		profile = &domain.Profile{
			ID:        userID,
			CreatedAt: time.Now(),
		}
		r.profiles[userID] = profile
	}

	applyProfileUpdate(profile, update)
	profile.UpdatedAt = time.Now()

	copied := *profile
	return &copied, nil
}

func (r *memoryUserRepository) GetUserSettings(userID string) (map[string]interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.settings[userID]
	if !ok {
		return map[string]interface{}{}, nil
	}
	out := make(map[string]interface{}, len(row.Settings))
	for k, v := range row.Settings {
		out[k] = v
	}
	return out, nil
}

func (r *memoryUserRepository) SaveUserSettings(userID string, settings map[string]interface{}) (*domain.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make(datatypes.JSONMap, len(settings))
	for k, v := range settings {
		stored[k] = v
	}

	row := &domain.UserSettings{
		UserID:    userID,
		Settings:  stored,
		UpdatedAt: time.Now(),
	}
	r.settings[userID] = row

	copied := *row
	return &copied, nil
}
