package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affarsradar-backend/internal/user/domain"
	"affarsradar-backend/internal/user/usecase"
)

// UserHandler handles profile and settings HTTP requests.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// CreateProfileRequest represents the request body for creating or updating
// a profile. ProfileData is filtered to the allowed fields; anything else is
// discarded.
type CreateProfileRequest struct {
	UserID      string                 `json:"userId"`
	ProfileData map[string]interface{} `json:"profileData"`
}

// GetCurrentUser returns the authenticated user's profile.
// GET /api/user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - User ID required"})
		return
	}

	profile := h.userUsecase.GetCurrentUser(userID)
	c.JSON(http.StatusOK, profile)
}

// GetSettings returns the authenticated user's settings mapping.
// GET /api/user/settings
func (h *UserHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - User ID required"})
		return
	}

	settings := h.userUsecase.GetSettings(userID)
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings upserts the authenticated user's settings.
// PUT /api/user/settings
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - User ID required"})
		return
	}

	var settings map[string]interface{}
	if err := c.ShouldBindJSON(&settings); err != nil || settings == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Settings object required"})
		return
	}

	row := h.userUsecase.UpdateSettings(userID, settings)
	c.JSON(http.StatusOK, row)
}

// CreateProfile creates or updates a profile. Open route: it is called right
// after signup, before the client holds a session token.
// POST /api/create-profile
func (h *UserHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId is required"})
		return
	}
	if req.ProfileData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "profileData object required"})
		return
	}

	profile, err := h.userUsecase.CreateOrUpdateProfile(req.UserID, filterProfileData(req.ProfileData))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create profile", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// filterProfileData keeps only the allow-listed profile fields.
func filterProfileData(data map[string]interface{}) domain.ProfileUpdate {
	var update domain.ProfileUpdate
	if v, ok := data["name"].(string); ok {
		update.Name = &v
	}
	if v, ok := data["email"].(string); ok {
		update.Email = &v
	}
	if v, ok := data["industry"].(string); ok {
		update.Industry = &v
	}
	if v, ok := data["company"].(string); ok {
		update.Company = &v
	}
	return update
}
