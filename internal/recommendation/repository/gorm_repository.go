package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"affarsradar-backend/internal/recommendation/domain"
	"affarsradar-backend/pkg/apperrors"
)

// gormRecommendationRepository implements RecommendationRepository using GORM.
type gormRecommendationRepository struct {
	db *gorm.DB
}

// NewGormRecommendationRepository creates a new GORM-based
// RecommendationRepository.
func NewGormRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &gormRecommendationRepository{db: db}
}

func (r *gormRecommendationRepository) GetRecommendations(userID *string, limit int) ([]*domain.RecommendationSet, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := r.db.Model(&domain.RecommendationSet{})
	if userID != nil && *userID != "" {
		query = query.Where("user_id = ?", *userID)
	}

	var sets []*domain.RecommendationSet
	err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&sets).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return sets, nil
}

func (r *gormRecommendationRepository) SaveRecommendations(set *domain.RecommendationSet) (*domain.RecommendationSet, error) {
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
