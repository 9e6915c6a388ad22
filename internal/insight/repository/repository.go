package repository

import "affarsradar-backend/internal/insight/domain"

// InsightRepository defines the persistence contract for insight sets.
// Implementations: GORM over the Supabase Postgres instance, and an
// in-memory store for test mode. Which one runs is decided once at startup.
type InsightRepository interface {
	// GetInsights returns stored sets newest first, optionally filtered by
	// user. limit caps the result; non-positive limits default to 10.
	GetInsights(userID *string, limit int) ([]*domain.InsightSet, error)

	// SaveInsights stores a new immutable set, assigning id and createdAt
	// when absent, and returns the stored record.
	SaveInsights(set *domain.InsightSet) (*domain.InsightSet, error)
}

// DefaultLimit is the fetch cap applied when callers pass no limit.
const DefaultLimit = 10
