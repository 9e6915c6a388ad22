package repository

import "affarsradar-backend/internal/recommendation/domain"

// RecommendationRepository defines the persistence contract for
// recommendation sets. Same ordering and filtering semantics as the insight
// repository.
type RecommendationRepository interface {
	GetRecommendations(userID *string, limit int) ([]*domain.RecommendationSet, error)
	SaveRecommendations(set *domain.RecommendationSet) (*domain.RecommendationSet, error)
}

// DefaultLimit is the fetch cap applied when callers pass no limit.
const DefaultLimit = 10
