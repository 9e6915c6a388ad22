package usecase

import (
	"context"

	"affarsradar-backend/internal/recommendation/domain"
)

// RecommendationUsecase defines the business logic for the recommendations
// flow.
type RecommendationUsecase interface {
	// GetLatest returns the newest stored set for the user, or a persisted
	// fallback when nothing is stored or the store cannot be read. It never
	// fails the caller over backend trouble.
	GetLatest(userID *string, limit int) *domain.RecommendationSet

	// Generate produces a fresh set from the user's contacts and interaction
	// history and persists it best-effort. contacts must be non-empty.
	Generate(ctx context.Context, contacts, interactions []map[string]interface{}, userID *string) (*domain.RecommendationSet, error)

	// Create stores a manually authored recommendation in the slot selected
	// by req.Type.
	Create(req CreateRecommendationRequest) (*domain.RecommendationSet, error)
}

// CreateRecommendationRequest carries a manually created recommendation.
type CreateRecommendationRequest struct {
	Title       string
	Description string
	Type        domain.RecommendationType
	Priority    domain.Priority
	Deadline    string
	UserID      *string
}
