package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"affarsradar-backend/internal/user/domain"
)

func strPtr(s string) *string { return &s }

func TestMemoryUserRepositorySettingsUpsert(t *testing.T) {
	repo := NewMemoryUserRepository()

	// Absence is not an error
	settings, err := repo.GetUserSettings("user-1")
	require.NoError(t, err)
	require.Empty(t, settings)

	first := map[string]interface{}{"theme": "dark", "notifications": true}
	_, err = repo.SaveUserSettings("user-1", first)
	require.NoError(t, err)

	got, err := repo.GetUserSettings("user-1")
	require.NoError(t, err)
	require.Equal(t, "dark", got["theme"])
	require.Equal(t, true, got["notifications"])

	// Second save overwrites the whole mapping
	second := map[string]interface{}{"theme": "light"}
	_, err = repo.SaveUserSettings("user-1", second)
	require.NoError(t, err)

	got, err = repo.GetUserSettings("user-1")
	require.NoError(t, err)
	require.Equal(t, "light", got["theme"])
	require.NotContains(t, got, "notifications")
}

func TestMemoryUserRepositoryProfileInsertThenPartialUpdate(t *testing.T) {
	repo := NewMemoryUserRepository()

	created, err := repo.CreateOrUpdateProfile("user-1", domain.ProfileUpdate{
		Name:     strPtr("Anna Andersson"),
		Industry: strPtr("fintech"),
	})
	require.NoError(t, err)
	require.Equal(t, "user-1", created.ID)
	require.Equal(t, "Anna Andersson", created.Name)
	require.Equal(t, "fintech", created.Industry)
	require.Empty(t, created.Company)

	// Only the provided field changes
	updated, err := repo.CreateOrUpdateProfile("user-1", domain.ProfileUpdate{
		Company: strPtr("Tech Innovations AB"),
	})
	require.NoError(t, err)
	require.Equal(t, "Anna Andersson", updated.Name)
	require.Equal(t, "fintech", updated.Industry)
	require.Equal(t, "Tech Innovations AB", updated.Company)
}

func TestMemoryUserRepositoryGetProfileMissing(t *testing.T) {
	repo := NewMemoryUserRepository()

	profile, err := repo.GetProfile("nobody")
	require.NoError(t, err)
	require.Nil(t, profile)
}
