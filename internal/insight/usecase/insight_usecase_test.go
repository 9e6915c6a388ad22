package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"affarsradar-backend/internal/insight/domain"
	"affarsradar-backend/internal/insight/repository"
	"affarsradar-backend/pkg/ai"
	"affarsradar-backend/pkg/apperrors"
	"affarsradar-backend/pkg/logger"
)

type failingInsightRepo struct{}

func (failingInsightRepo) GetInsights(*string, int) ([]*domain.InsightSet, error) {
	return nil, apperrors.ErrStorage
}

func (failingInsightRepo) SaveInsights(*domain.InsightSet) (*domain.InsightSet, error) {
	return nil, apperrors.ErrStorage
}

type failingGenerator struct{ err error }

func (g failingGenerator) GenerateBusinessInsights(context.Context, string) (*ai.InsightPayload, error) {
	return nil, g.err
}

func (g failingGenerator) GenerateContactRecommendations(context.Context, []map[string]interface{}, []map[string]interface{}) (*ai.RecommendationPayload, error) {
	return nil, g.err
}

func newTestUsecase() (InsightUsecase, repository.InsightRepository) {
	repo := repository.NewMemoryInsightRepository()
	uc := NewInsightUsecase(repo, ai.NewMockGenerator(), logger.NewNop())
	return uc, repo
}

func TestGetLatestPersistsFallbackOnce(t *testing.T) {
	uc, _ := newTestUsecase()

	first := uc.GetLatest(nil, 10)
	require.NotNil(t, first)
	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, first.IndustryTrends)

	// Second read returns the persisted fallback, not a fresh synthesis
	second := uc.GetLatest(nil, 10)
	require.Equal(t, first.ID, second.ID)
}

func TestGetLatestReturnsNewestStored(t *testing.T) {
	uc, repo := newTestUsecase()

	userID := "user-1"
	_, err := repo.SaveInsights(&domain.InsightSet{ID: "older", UserID: &userID})
	require.NoError(t, err)
	_, err = repo.SaveInsights(&domain.InsightSet{ID: "newer", UserID: &userID})
	require.NoError(t, err)

	got := uc.GetLatest(&userID, 10)
	require.Equal(t, "newer", got.ID)
}

func TestGetLatestSurvivesStoreFailure(t *testing.T) {
	uc := NewInsightUsecase(failingInsightRepo{}, ai.NewMockGenerator(), logger.NewNop())

	set := uc.GetLatest(nil, 10)
	require.NotNil(t, set)
	require.NotEmpty(t, set.ID)
	require.NotEmpty(t, set.IndustryTrends)
}

func TestGenerateRequiresIndustry(t *testing.T) {
	uc, repo := newTestUsecase()

	_, err := uc.Generate(context.Background(), "", nil)
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	// No persistence side effect
	sets, err := repo.GetInsights(nil, 10)
	require.NoError(t, err)
	require.Empty(t, sets)
}

func TestGenerateMapsPayloadAndPersists(t *testing.T) {
	uc, repo := newTestUsecase()

	set, err := uc.Generate(context.Background(), "stockmarket", nil)
	require.NoError(t, err)
	require.NotEmpty(t, set.ID)
	// 3 trends plus 2 risks carried as negative-sentiment trends
	require.Len(t, set.IndustryTrends, 5)
	require.Equal(t, domain.SentimentNegative, set.IndustryTrends[3].Sentiment)
	require.Len(t, set.MarketOpportunities, 2)
	require.NotNil(t, set.WeeklyChallenge)
	require.Equal(t, "Portföljöversyn", set.WeeklyChallenge.Title)

	sets, err := repo.GetInsights(nil, 10)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Equal(t, set.ID, sets[0].ID)
}

func TestGenerateSurfacesGenerationFailure(t *testing.T) {
	genErr := errors.New("boom")
	uc := NewInsightUsecase(repository.NewMemoryInsightRepository(), failingGenerator{err: genErr}, logger.NewNop())

	_, err := uc.Generate(context.Background(), "fintech", nil)
	require.ErrorIs(t, err, genErr)
}

func TestGenerateReturnsUnsavedResultOnStoreFailure(t *testing.T) {
	uc := NewInsightUsecase(failingInsightRepo{}, ai.NewMockGenerator(), logger.NewNop())

	set, err := uc.Generate(context.Background(), "fintech", nil)
	require.NoError(t, err)
	require.NotEmpty(t, set.ID)
	require.False(t, set.CreatedAt.IsZero())
}

func TestCreateTrendFillsExactlyOneSlot(t *testing.T) {
	uc, _ := newTestUsecase()

	set, err := uc.Create(CreateInsightRequest{
		Title:       "Ökad digitalisering",
		Description: "Fler investerar i digitala lösningar.",
		Type:        domain.InsightTypeTrend,
	})
	require.NoError(t, err)
	require.Len(t, set.IndustryTrends, 1)
	require.Equal(t, domain.SentimentNeutral, set.IndustryTrends[0].Sentiment)
	require.Empty(t, set.MarketOpportunities)
	require.Nil(t, set.WeeklyChallenge)
}

func TestCreateChallengeFillsChallengeSlot(t *testing.T) {
	uc, _ := newTestUsecase()

	set, err := uc.Create(CreateInsightRequest{
		Title:       "Kundintervjuer",
		Description: "Genomför tre djupintervjuer.",
		Type:        domain.InsightTypeChallenge,
	})
	require.NoError(t, err)
	require.Empty(t, set.IndustryTrends)
	require.NotNil(t, set.WeeklyChallenge)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	uc, repo := newTestUsecase()

	_, err := uc.Create(CreateInsightRequest{
		Title:       "x",
		Description: "y",
		Type:        domain.InsightType("bogus"),
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	sets, err := repo.GetInsights(nil, 10)
	require.NoError(t, err)
	require.Empty(t, sets)
}
