package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"affarsradar-backend/internal/recommendation/domain"
	"affarsradar-backend/internal/recommendation/usecase"
	"affarsradar-backend/pkg/apperrors"
)

// RecommendationHandler handles recommendation-related HTTP requests.
type RecommendationHandler struct {
	recommendationUsecase usecase.RecommendationUsecase
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationUsecase usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUsecase: recommendationUsecase,
	}
}

// CreateRecommendationRequest represents the request body for creating a
// recommendation.
type CreateRecommendationRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority,omitempty"`
	Deadline    string  `json:"deadline,omitempty"`
	UserID      *string `json:"userId,omitempty"`
}

// GenerateRecommendationsRequest represents the request body for generating
// recommendations from contacts and interaction history.
type GenerateRecommendationsRequest struct {
	Contacts     []map[string]interface{} `json:"contacts"`
	Interactions []map[string]interface{} `json:"interactions"`
	UserID       *string                  `json:"userId,omitempty"`
}

// GetRecommendations returns the latest recommendation set, falling back to
// default content when nothing is stored.
// GET /api/recommendations?userId=&limit=
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var userID *string
	if v := c.Query("userId"); v != "" {
		userID = &v
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	set := h.recommendationUsecase.GetLatest(userID, limit)
	c.JSON(http.StatusOK, set)
}

// CreateRecommendation stores a manually authored recommendation.
// POST /api/recommendations
func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	var req CreateRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	set, err := h.recommendationUsecase.Create(usecase.CreateRecommendationRequest{
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.RecommendationType(req.Type),
		Priority:    domain.Priority(req.Priority),
		Deadline:    req.Deadline,
		UserID:      req.UserID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create recommendation", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, set)
}

// GenerateRecommendations produces a fresh recommendation set from the
// submitted contacts and interaction history.
// POST /api/recommendations/generate
func (h *RecommendationHandler) GenerateRecommendations(c *gin.Context) {
	var req GenerateRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if len(req.Contacts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Contacts are required"})
		return
	}

	set, err := h.recommendationUsecase.Generate(c.Request.Context(), req.Contacts, req.Interactions, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Contacts are required"})
			return
		}
		if errors.Is(err, apperrors.ErrBadResponse) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse generated recommendations", "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate recommendations", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, set)
}
