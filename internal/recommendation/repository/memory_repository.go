package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"affarsradar-backend/internal/recommendation/domain"
)

type memoryRecommendationRow struct {
	set *domain.RecommendationSet
	seq int
}

// memoryRecommendationRepository is the test-mode store. Single-process use
// only.
type memoryRecommendationRepository struct {
	mu   sync.Mutex
	rows []memoryRecommendationRow
	seq  int
}

// NewMemoryRecommendationRepository creates an empty in-memory
// RecommendationRepository.
func NewMemoryRecommendationRepository() RecommendationRepository {
	return &memoryRecommendationRepository{}
}

func (r *memoryRecommendationRepository) GetRecommendations(userID *string, limit int) ([]*domain.RecommendationSet, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []memoryRecommendationRow
	for _, row := range r.rows {
		if userID != nil && *userID != "" {
			if row.set.UserID == nil || *row.set.UserID != *userID {
				continue
			}
		}
		matched = append(matched, row)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].set.CreatedAt.Equal(matched[j].set.CreatedAt) {
			return matched[i].seq > matched[j].seq
		}
		return matched[i].set.CreatedAt.After(matched[j].set.CreatedAt)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*domain.RecommendationSet, 0, len(matched))
	for _, row := range matched {
		copied := *row.set
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryRecommendationRepository) SaveRecommendations(set *domain.RecommendationSet) (*domain.RecommendationSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}

	stored := *set
	r.seq++
	r.rows = append(r.rows, memoryRecommendationRow{set: &stored, seq: r.seq})
	return set, nil
}
