package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "affarsradar-backend/internal/auth/delivery"
	insightDelivery "affarsradar-backend/internal/insight/delivery"
	recommendationDelivery "affarsradar-backend/internal/recommendation/delivery"
	userDelivery "affarsradar-backend/internal/user/delivery"
)

// SetupRoutes registers the API route table. Health check and profile
// creation are open; everything else requires a bearer token (bypassed in
// test mode).
func SetupRoutes(
	r *gin.Engine,
	verifier authDelivery.TokenVerifier,
	testMode bool,
	insightHandler *insightDelivery.InsightHandler,
	recommendationHandler *recommendationDelivery.RecommendationHandler,
	userHandler *userDelivery.UserHandler,
) {
	requireAuth := authDelivery.AuthMiddleware(verifier, testMode)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Profile creation happens right after signup, before a session
		// token exists
		api.POST("/create-profile", userHandler.CreateProfile)

		// Insights routes (protected)
		insights := api.Group("/insights")
		insights.Use(requireAuth)
		{
			insights.GET("", insightHandler.GetInsights)
			insights.POST("", insightHandler.CreateInsight)
			insights.POST("/generate", insightHandler.GenerateInsights)
		}

		// Recommendations routes (protected)
		recommendations := api.Group("/recommendations")
		recommendations.Use(requireAuth)
		{
			recommendations.GET("", recommendationHandler.GetRecommendations)
			recommendations.POST("", recommendationHandler.CreateRecommendation)
			recommendations.POST("/generate", recommendationHandler.GenerateRecommendations)
		}

		// User routes (protected)
		user := api.Group("/user")
		user.Use(requireAuth)
		{
			user.GET("", userHandler.GetCurrentUser)
			user.GET("/settings", userHandler.GetSettings)
			user.PUT("/settings", userHandler.UpdateSettings)
		}
	}
}
