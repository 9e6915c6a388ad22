package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"affarsradar-backend/internal/user/domain"
	"affarsradar-backend/pkg/apperrors"
	"affarsradar-backend/pkg/logger"
)

// gormUserRepository implements UserRepository using GORM. Profile writes
// normally go through the elevated handle (profiles sit behind row-level
// security in Supabase); when none is configured the default handle is used
// and a warning is logged instead of failing the caller.
type gormUserRepository struct {
	db      *gorm.DB
	adminDB *gorm.DB
	log     *logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository. adminDB may
// be nil when no service-role credentials are configured.
func NewGormUserRepository(db, adminDB *gorm.DB, log *logger.Logger) UserRepository {
	return &gormUserRepository{
		db:      db,
		adminDB: adminDB,
		log:     log.With("repository", "user"),
	}
}

func (r *gormUserRepository) GetProfile(userID string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.Where("id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &profile, nil
}

func (r *gormUserRepository) CreateOrUpdateProfile(userID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	db := r.adminDB
	if db == nil {
		r.log.Warn("no elevated store credentials configured, writing profile in degraded mode")
		db = r.db
	}

	var profile domain.Profile
	err := db.Where("id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = domain.Profile{
			ID:        userID,
			CreatedAt: time.Now(),
		}
	case err != nil:
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	applyProfileUpdate(&profile, update)
	profile.UpdatedAt = time.Now()

	if err := db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &profile, nil
}

func (r *gormUserRepository) GetUserSettings(userID string) (map[string]interface{}, error) {
	var row domain.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No settings yet is not an error.
			return map[string]interface{}{}, nil
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return row.Settings, nil
}

func (r *gormUserRepository) SaveUserSettings(userID string, settings map[string]interface{}) (*domain.UserSettings, error) {
	row := domain.UserSettings{
		UserID:    userID,
		Settings:  datatypes.JSONMap(settings),
		UpdatedAt: time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &row, nil
}

func applyProfileUpdate(profile *domain.Profile, update domain.ProfileUpdate) {
	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Email != nil {
		profile.Email = *update.Email
	}
	if update.Industry != nil {
		profile.Industry = *update.Industry
	}
	if update.Company != nil {
		profile.Company = *update.Company
	}
}
