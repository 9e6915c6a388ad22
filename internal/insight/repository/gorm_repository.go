package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"affarsradar-backend/internal/insight/domain"
	"affarsradar-backend/pkg/apperrors"
)

// gormInsightRepository implements InsightRepository using GORM.
type gormInsightRepository struct {
	db *gorm.DB
}

// NewGormInsightRepository creates a new GORM-based InsightRepository.
func NewGormInsightRepository(db *gorm.DB) InsightRepository {
	return &gormInsightRepository{db: db}
}

func (r *gormInsightRepository) GetInsights(userID *string, limit int) ([]*domain.InsightSet, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := r.db.Model(&domain.InsightSet{})
	if userID != nil && *userID != "" {
		query = query.Where("user_id = ?", *userID)
	}

	var sets []*domain.InsightSet
	// Ties on created_at are broken by id so repeated reads stay stable.
	err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&sets).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return sets, nil
}

func (r *gormInsightRepository) SaveInsights(set *domain.InsightSet) (*domain.InsightSet, error) {
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}
	if err := r.db.Create(set).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return set, nil
}
