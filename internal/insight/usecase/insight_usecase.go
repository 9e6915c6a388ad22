package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"affarsradar-backend/internal/insight/domain"
	"affarsradar-backend/internal/insight/repository"
	"affarsradar-backend/pkg/ai"
	"affarsradar-backend/pkg/apperrors"
	"affarsradar-backend/pkg/logger"
)

// insightUsecase implements InsightUsecase.
type insightUsecase struct {
	repo      repository.InsightRepository
	generator ai.Generator
	log       *logger.Logger
}

// NewInsightUsecase creates a new instance of insightUsecase.
func NewInsightUsecase(repo repository.InsightRepository, generator ai.Generator, log *logger.Logger) InsightUsecase {
	return &insightUsecase{
		repo:      repo,
		generator: generator,
		log:       log.With("usecase", "insight"),
	}
}

func (u *insightUsecase) GetLatest(userID *string, limit int) *domain.InsightSet {
	sets, err := u.repo.GetInsights(userID, limit)
	if err == nil && len(sets) > 0 {
		return sets[0]
	}
	if err != nil {
		u.log.Warn("failed to read insights, falling back to default content", "error", err)
	}

	fallback := fallbackInsightSet(userID)
	stored, err := u.repo.SaveInsights(fallback)
	if err != nil {
		// Persisting the fallback is best-effort; the caller still gets
		// content.
		u.log.Warn("failed to persist fallback insights", "error", err)
		ensureIdentity(fallback)
		return fallback
	}
	return stored
}

func (u *insightUsecase) Generate(ctx context.Context, industry string, userID *string) (*domain.InsightSet, error) {
	if industry == "" {
		return nil, fmt.Errorf("%w: industry is required", apperrors.ErrInvalidArgument)
	}

	payload, err := u.generator.GenerateBusinessInsights(ctx, industry)
	if err != nil {
		return nil, err
	}

	set := insightSetFromPayload(payload, userID)
	stored, err := u.repo.SaveInsights(set)
	if err != nil {
		u.log.Warn("failed to persist generated insights, returning unsaved result", "industry", industry, "error", err)
		ensureIdentity(set)
		return set, nil
	}
	return stored, nil
}

func (u *insightUsecase) Create(req CreateInsightRequest) (*domain.InsightSet, error) {
	if req.Title == "" || req.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", apperrors.ErrInvalidArgument)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown insight type %q", apperrors.ErrInvalidArgument, req.Type)
	}

	sentiment := req.Sentiment
	if sentiment == "" {
		sentiment = domain.SentimentNeutral
	}

	set := &domain.InsightSet{
		UserID:              req.UserID,
		IndustryTrends:      []domain.IndustryTrend{},
		MarketOpportunities: []domain.MarketOpportunity{},
	}
	switch req.Type {
	case domain.InsightTypeTrend:
		set.IndustryTrends = []domain.IndustryTrend{{
			Title:       req.Title,
			Description: req.Description,
			Sentiment:   sentiment,
		}}
	case domain.InsightTypeOpportunity:
		set.MarketOpportunities = []domain.MarketOpportunity{{
			Title:       req.Title,
			Description: req.Description,
		}}
	case domain.InsightTypeChallenge:
		set.WeeklyChallenge = &domain.WeeklyChallenge{
			Title:       req.Title,
			Description: req.Description,
		}
	}

	stored, err := u.repo.SaveInsights(set)
	if err != nil {
		u.log.Warn("failed to persist created insight, returning unsaved result", "error", err)
		ensureIdentity(set)
		return set, nil
	}
	return stored, nil
}

// insightSetFromPayload maps a generation payload onto the stored record
// shape. Risks have no slot of their own and are carried as
// negative-sentiment trends.
func insightSetFromPayload(payload *ai.InsightPayload, userID *string) *domain.InsightSet {
	set := &domain.InsightSet{
		UserID:              userID,
		IndustryTrends:      make([]domain.IndustryTrend, 0, len(payload.Trends)+len(payload.Risks)),
		MarketOpportunities: make([]domain.MarketOpportunity, 0, len(payload.Opportunities)),
	}

	for _, t := range payload.Trends {
		set.IndustryTrends = append(set.IndustryTrends, domain.IndustryTrend{
			Title:       t.Title,
			Description: t.Description,
			Sentiment:   parseSentiment(t.Sentiment),
		})
	}
	for _, r := range payload.Risks {
		set.IndustryTrends = append(set.IndustryTrends, domain.IndustryTrend{
			Title:       r.Title,
			Description: r.Description,
			Sentiment:   domain.SentimentNegative,
		})
	}
	for _, o := range payload.Opportunities {
		set.MarketOpportunities = append(set.MarketOpportunities, domain.MarketOpportunity{
			Title:       o.Title,
			Description: o.Description,
		})
	}
	if payload.WeeklyChallenge != nil {
		set.WeeklyChallenge = &domain.WeeklyChallenge{
			Title:       payload.WeeklyChallenge.Title,
			Description: payload.WeeklyChallenge.Description,
		}
	}
	return set
}

// fallbackInsightSet is the fixed, non-personalized content served when no
// record exists yet.
func fallbackInsightSet(userID *string) *domain.InsightSet {
	return &domain.InsightSet{
		UserID: userID,
		IndustryTrends: []domain.IndustryTrend{
			{
				Title:       "Ökad efterfrågan på hållbara produkter",
				Description: "Konsumenter visar allt större intresse för miljövänliga alternativ.",
				Sentiment:   domain.SentimentPositive,
			},
			{
				Title:       "Digitalisering påskyndas inom traditionella branscher",
				Description: "Företag inom tillverkningsindustrin investerar mer i digital omställning.",
				Sentiment:   domain.SentimentNeutral,
			},
		},
		MarketOpportunities: []domain.MarketOpportunity{
			{
				Title:       "Nya regelverk skapar möjligheter inom compliance",
				Description: "Företag söker lösningar för att anpassa sig till nya EU-direktiv.",
			},
		},
		WeeklyChallenge: &domain.WeeklyChallenge{
			Title:       "Kontakta tre potentiella kunder inom en ny målgrupp",
			Description: "Utforska möjligheter att expandera din kundbas genom att rikta in dig på ett nytt marknadssegment.",
		},
	}
}

func parseSentiment(s string) domain.Sentiment {
	switch domain.Sentiment(s) {
	case domain.SentimentPositive:
		return domain.SentimentPositive
	case domain.SentimentNegative:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func ensureIdentity(set *domain.InsightSet) {
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}
}
