package usecase

import (
	"context"

	"affarsradar-backend/internal/insight/domain"
)

// InsightUsecase defines the business logic for the insights flow.
type InsightUsecase interface {
	// GetLatest returns the newest stored set for the user, or a persisted
	// fallback when nothing is stored or the store cannot be read. It never
	// fails the caller over backend trouble.
	GetLatest(userID *string, limit int) *domain.InsightSet

	// Generate produces a fresh set for the industry via the generation
	// gateway and persists it best-effort.
	Generate(ctx context.Context, industry string, userID *string) (*domain.InsightSet, error)

	// Create stores a manually authored insight in the slot selected by
	// req.Type.
	Create(req CreateInsightRequest) (*domain.InsightSet, error)
}

// CreateInsightRequest carries a manually created insight.
type CreateInsightRequest struct {
	Title       string
	Description string
	Type        domain.InsightType
	Sentiment   domain.Sentiment
	UserID      *string
}
