package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"affarsradar-backend/internal/insight/domain"
)

type memoryInsightRow struct {
	set *domain.InsightSet
	seq int
}

// memoryInsightRepository is the test-mode InsightRepository: a plain
// insertion-ordered list. Single-process use only.
type memoryInsightRepository struct {
	mu   sync.Mutex
	rows []memoryInsightRow
	seq  int
}

// NewMemoryInsightRepository creates an empty in-memory InsightRepository.
func NewMemoryInsightRepository() InsightRepository {
	return &memoryInsightRepository{}
}

func (r *memoryInsightRepository) GetInsights(userID *string, limit int) ([]*domain.InsightSet, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []memoryInsightRow
	for _, row := range r.rows {
		if userID != nil && *userID != "" {
			if row.set.UserID == nil || *row.set.UserID != *userID {
				continue
			}
		}
		matched = append(matched, row)
	}

	// Newest first; equal timestamps resolve by insertion sequence, the
	// later insert winning.
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].set.CreatedAt.Equal(matched[j].set.CreatedAt) {
			return matched[i].seq > matched[j].seq
		}
		return matched[i].set.CreatedAt.After(matched[j].set.CreatedAt)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*domain.InsightSet, 0, len(matched))
	for _, row := range matched {
		copied := *row.set
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryInsightRepository) SaveInsights(set *domain.InsightSet) (*domain.InsightSet, error) {
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
	r.rows = append(r.rows, memoryInsightRow{set: &stored, seq: r.seq})
	return set, nil
}
