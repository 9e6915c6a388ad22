package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"affarsradar-backend/internal/user/domain"
	"affarsradar-backend/internal/user/repository"
	"affarsradar-backend/pkg/apperrors"
	"affarsradar-backend/pkg/logger"
)

// failingUserRepo errors on every call.
type failingUserRepo struct{}

func (failingUserRepo) GetProfile(string) (*domain.Profile, error) {
	return nil, errors.New("store down")
}

func (failingUserRepo) CreateOrUpdateProfile(string, domain.ProfileUpdate) (*domain.Profile, error) {
	return nil, errors.New("store down")
}

func (failingUserRepo) GetUserSettings(string) (map[string]interface{}, error) {
	return nil, errors.New("store down")
}

func (failingUserRepo) SaveUserSettings(string, map[string]interface{}) (*domain.UserSettings, error) {
	return nil, errors.New("store down")
}

func TestGetCurrentUserPlaceholderWhenMissing(t *testing.T) {
	uc := NewUserUsecase(repository.NewMemoryUserRepository(), logger.NewNop())

	profile := uc.GetCurrentUser("user-1")
	require.NotNil(t, profile)
	require.Equal(t, "user-1", profile.ID)
	require.Equal(t, "Test User", profile.Name)
	require.Equal(t, "user@example.com", profile.Email)
}

func TestGetCurrentUserFillsEmptyEmail(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	name := "Anna Andersson"
	_, err := repo.CreateOrUpdateProfile("user-1", domain.ProfileUpdate{Name: &name})
	require.NoError(t, err)

	uc := NewUserUsecase(repo, logger.NewNop())
	profile := uc.GetCurrentUser("user-1")
	require.Equal(t, "Anna Andersson", profile.Name)
	require.Equal(t, "user@example.com", profile.Email)
}

func TestGetCurrentUserSurvivesStoreFailure(t *testing.T) {
	uc := NewUserUsecase(failingUserRepo{}, logger.NewNop())

	profile := uc.GetCurrentUser("user-1")
	require.NotNil(t, profile)
	require.Equal(t, "user-1", profile.ID)
}

func TestGetSettingsDefaultsOnFailure(t *testing.T) {
	uc := NewUserUsecase(failingUserRepo{}, logger.NewNop())

	settings := uc.GetSettings("user-1")
	require.Equal(t, domain.DefaultSettings(), settings)
}

func TestUpdateSettingsRoundtrip(t *testing.T) {
	uc := NewUserUsecase(repository.NewMemoryUserRepository(), logger.NewNop())

	row := uc.UpdateSettings("user-1", map[string]interface{}{"theme": "dark"})
	require.Equal(t, "user-1", row.UserID)
	require.Equal(t, "dark", row.Settings["theme"])

	settings := uc.GetSettings("user-1")
	require.Equal(t, "dark", settings["theme"])
}

func TestUpdateSettingsSurvivesStoreFailure(t *testing.T) {
	uc := NewUserUsecase(failingUserRepo{}, logger.NewNop())

	row := uc.UpdateSettings("user-1", map[string]interface{}{"theme": "dark"})
	require.NotNil(t, row)
	require.Equal(t, "dark", row.Settings["theme"])
}

func TestCreateOrUpdateProfileRequiresUserID(t *testing.T) {
	uc := NewUserUsecase(repository.NewMemoryUserRepository(), logger.NewNop())

	_, err := uc.CreateOrUpdateProfile("", domain.ProfileUpdate{})
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateOrUpdateProfilePartialUpdate(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	uc := NewUserUsecase(repo, logger.NewNop())

	name := "Anna Andersson"
	industry := "Teknik"
	profile, err := uc.CreateOrUpdateProfile("user-1", domain.ProfileUpdate{Name: &name, Industry: &industry})
	require.NoError(t, err)
	require.Equal(t, "Anna Andersson", profile.Name)

	company := "Tech AB"
	profile, err = uc.CreateOrUpdateProfile("user-1", domain.ProfileUpdate{Company: &company})
	require.NoError(t, err)
	require.Equal(t, "Anna Andersson", profile.Name)
	require.Equal(t, "Teknik", profile.Industry)
	require.Equal(t, "Tech AB", profile.Company)
}
