package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"affarsradar-backend/internal/insight/domain"
	"affarsradar-backend/internal/insight/usecase"
	"affarsradar-backend/pkg/apperrors"
)

// InsightHandler handles insight-related HTTP requests.
type InsightHandler struct {
	insightUsecase usecase.InsightUsecase
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightUsecase usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{
		insightUsecase: insightUsecase,
	}
}

// CreateInsightRequest represents the request body for creating an insight.
type CreateInsightRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Sentiment   string  `json:"sentiment,omitempty"`
	UserID      *string `json:"userId,omitempty"`
}

// GenerateInsightsRequest represents the request body for generating
// insights for an industry.
type GenerateInsightsRequest struct {
	Industry string  `json:"industry"`
	UserID   *string `json:"userId,omitempty"`
}

// GetInsights returns the latest insight set, falling back to default
// content when nothing is stored.
// GET /api/insights?userId=&limit=
func (h *InsightHandler) GetInsights(c *gin.Context) {
	var userID *string
	if v := c.Query("userId"); v != "" {
		userID = &v
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	set := h.insightUsecase.GetLatest(userID, limit)
	c.JSON(http.StatusOK, set)
}

// CreateInsight stores a manually authored insight.
// POST /api/insights
func (h *InsightHandler) CreateInsight(c *gin.Context) {
	var req CreateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	set, err := h.insightUsecase.Create(usecase.CreateInsightRequest{
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.InsightType(req.Type),
		Sentiment:   domain.Sentiment(req.Sentiment),
		UserID:      req.UserID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create insight", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, set)
}

// GenerateInsights produces a fresh insight set for an industry.
// POST /api/insights/generate
func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	var req GenerateInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	if req.Industry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Industry is required"})
		return
	}

	set, err := h.insightUsecase.Generate(c.Request.Context(), req.Industry, req.UserID)
	if err != nil {
		// Malformed model output and backend failures both surface as 500,
		// but with distinct messages since only the latter is retryable.
		if errors.Is(err, apperrors.ErrBadResponse) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to parse generated insights", "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate insights", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, set)
}
