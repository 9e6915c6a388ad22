package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"affarsradar-backend/internal/recommendation/domain"
	"affarsradar-backend/internal/recommendation/repository"
	"affarsradar-backend/pkg/ai"
	"affarsradar-backend/pkg/apperrors"
	"affarsradar-backend/pkg/logger"
)

// recommendationUsecase implements RecommendationUsecase. generator may be
// nil; without one, recommendations are derived deterministically from the
// submitted contacts.
type recommendationUsecase struct {
	repo      repository.RecommendationRepository
	generator ai.Generator
	log       *logger.Logger
}

// NewRecommendationUsecase creates a new instance of recommendationUsecase.
func NewRecommendationUsecase(repo repository.RecommendationRepository, generator ai.Generator, log *logger.Logger) RecommendationUsecase {
	return &recommendationUsecase{
		repo:      repo,
		generator: generator,
		log:       log.With("usecase", "recommendation"),
	}
}

func (u *recommendationUsecase) GetLatest(userID *string, limit int) *domain.RecommendationSet {
	sets, err := u.repo.GetRecommendations(userID, limit)
	if err == nil && len(sets) > 0 {
		return sets[0]
	}
	if err != nil {
		u.log.Warn("failed to read recommendations, falling back to default content", "error", err)
	}

	fallback := fallbackRecommendationSet(userID)
	stored, err := u.repo.SaveRecommendations(fallback)
	if err != nil {
		u.log.Warn("failed to persist fallback recommendations", "error", err)
		ensureIdentity(fallback)
		return fallback
	}
	return stored
}

func (u *recommendationUsecase) Generate(ctx context.Context, contacts, interactions []map[string]interface{}, userID *string) (*domain.RecommendationSet, error) {
	if len(contacts) == 0 {
		return nil, fmt.Errorf("%w: contacts are required", apperrors.ErrInvalidArgument)
	}

	var set *domain.RecommendationSet
	if u.generator != nil {
		payload, err := u.generator.GenerateContactRecommendations(ctx, contacts, interactions)
		if err != nil {
			return nil, err
		}
		set = recommendationSetFromPayload(payload, userID)
	} else {
		set = deriveRecommendations(contacts, userID)
	}

	stored, err := u.repo.SaveRecommendations(set)
	if err != nil {
		u.log.Warn("failed to persist generated recommendations, returning unsaved result", "error", err)
		ensureIdentity(set)
		return set, nil
	}
	return stored, nil
}

func (u *recommendationUsecase) Create(req CreateRecommendationRequest) (*domain.RecommendationSet, error) {
	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", apperrors.ErrInvalidArgument)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown recommendation type %q", apperrors.ErrInvalidArgument, req.Type)
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	set := &domain.RecommendationSet{
		UserID:   req.UserID,
		Contacts: []domain.Contact{},
		Actions:  []domain.Action{},
	}
	switch req.Type {
	case domain.RecommendationTypeContact:
		set.Contacts = []domain.Contact{{
			Name:     req.Title,
			Reason:   req.Description,
			Priority: priority,
		}}
	case domain.RecommendationTypeAction:
		set.Actions = []domain.Action{{
			Title:       req.Title,
			Description: req.Description,
			Deadline:    req.Deadline,
		}}
	case domain.RecommendationTypeLearning:
		set.LearningTip = &domain.LearningTip{
			Title:    req.Title,
			Resource: req.Description,
		}
	}

	stored, err := u.repo.SaveRecommendations(set)
	if err != nil {
		u.log.Warn("failed to persist created recommendation, returning unsaved result", "error", err)
		ensureIdentity(set)
		return set, nil
	}
	return stored, nil
}

// deriveRecommendations builds a recommendation set without a generation
// backend: up to three priority contacts (the first tagged high, the rest
// medium), two fixed follow-up actions, and a fixed learning tip.
func deriveRecommendations(contacts []map[string]interface{}, userID *string) *domain.RecommendationSet {
	max := 3
	if len(contacts) < max {
		max = len(contacts)
	}

	prioritized := make([]domain.Contact, 0, max)
	for i := 0; i < max; i++ {
		priority := domain.PriorityMedium
		reason := "Håll relationen varm med en regelbunden avstämning."
		if i == 0 {
			priority = domain.PriorityHigh
			reason = "Längst tid sedan senaste kontakt, prioritera uppföljning."
		}
		prioritized = append(prioritized, domain.Contact{
			Name:     stringField(contacts[i], "name"),
			Company:  stringField(contacts[i], "company"),
			Reason:   reason,
			Priority: priority,
		})
	}

	today := time.Now()
	return &domain.RecommendationSet{
		UserID:   userID,
		Contacts: prioritized,
		Actions: []domain.Action{
			{
				Title:       "Boka uppföljningsmöten",
				Description: "Kontakta dina prioriterade kontakter och boka in avstämningar.",
				Deadline:    today.AddDate(0, 0, 5).Format("2006-01-02"),
			},
			{
				Title:       "Uppdatera din kontaktlista",
				Description: "Gå igenom interaktionshistoriken och notera nästa steg per kontakt.",
				Deadline:    today.AddDate(0, 0, 7).Format("2006-01-02"),
			},
		},
		LearningTip: &domain.LearningTip{
			Title:    "Förbättra dina förhandlingstekniker",
			Resource: "Kursen \"Effektiv Förhandling i B2B-sammanhang\" på LinkedIn Learning",
		},
	}
}

func recommendationSetFromPayload(payload *ai.RecommendationPayload, userID *string) *domain.RecommendationSet {
	set := &domain.RecommendationSet{
		UserID:   userID,
		Contacts: make([]domain.Contact, 0, len(payload.PriorityContacts)),
		Actions:  make([]domain.Action, 0, len(payload.RecommendedActions)),
	}
	for _, c := range payload.PriorityContacts {
		set.Contacts = append(set.Contacts, domain.Contact{
			Name:     c.Name,
			Company:  c.Company,
			Reason:   c.Reason,
			Priority: parsePriority(c.Priority),
		})
	}
	for _, a := range payload.RecommendedActions {
		set.Actions = append(set.Actions, domain.Action{
			Title:       a.Title,
			Description: a.Description,
			Deadline:    a.Deadline,
		})
	}
	if payload.LearningTip != nil {
		set.LearningTip = &domain.LearningTip{
			Title:    payload.LearningTip.Title,
			Resource: payload.LearningTip.Resource,
		}
	}
	return set
}

// fallbackRecommendationSet is the fixed, non-personalized content served
// when no record exists yet.
func fallbackRecommendationSet(userID *string) *domain.RecommendationSet {
	return &domain.RecommendationSet{
		UserID: userID,
		Contacts: []domain.Contact{
			{
				Name:     "Anna Andersson",
				Company:  "Tech Innovations AB",
				Reason:   "Har inte haft kontakt på 3 månader, visade intresse för er nya produkt.",
				Priority: domain.PriorityHigh,
			},
			{
				Name:     "Erik Svensson",
				Company:  "Framtidens Bygg",
				Reason:   "Följ upp efter ert senaste möte om potentiellt samarbete.",
				Priority: domain.PriorityMedium,
			},
		},
		Actions: []domain.Action{
			{
				Title:       "Skicka ut information om den nya tjänsten",
				Description: "Rikta specifikt mot kunder inom tillverkningsindustrin.",
				Deadline:    "2025-03-01",
			},
			{
				Title:       "Boka in demonstrationer",
				Description: "Visa upp den senaste versionen för intresserade kunder.",
				Deadline:    "2025-03-15",
			},
		},
		LearningTip: &domain.LearningTip{
			Title:    "Förbättra dina förhandlingstekniker",
			Resource: "Kursen \"Effektiv Förhandling i B2B-sammanhang\" på LinkedIn Learning",
		},
	}
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func ensureIdentity(set *domain.RecommendationSet) {
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}
}
