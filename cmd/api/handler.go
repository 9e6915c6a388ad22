package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authDelivery "affarsradar-backend/internal/auth/delivery"
	insightDelivery "affarsradar-backend/internal/insight/delivery"
	insightUsecase "affarsradar-backend/internal/insight/usecase"
	recommendationDelivery "affarsradar-backend/internal/recommendation/delivery"
	recommendationUsecase "affarsradar-backend/internal/recommendation/usecase"
	userDelivery "affarsradar-backend/internal/user/delivery"
	userUsecase "affarsradar-backend/internal/user/usecase"
	"affarsradar-backend/pkg/config"
)

// Handler assembles the HTTP server.
type Handler struct {
	config                *config.Config
	verifier              authDelivery.TokenVerifier
	insightHandler        *insightDelivery.InsightHandler
	recommendationHandler *recommendationDelivery.RecommendationHandler
	userHandler           *userDelivery.UserHandler
}

// NewHandler wires the delivery layer from the flows.
func NewHandler(
	cfg *config.Config,
	verifier authDelivery.TokenVerifier,
	insightUc insightUsecase.InsightUsecase,
	recommendationUc recommendationUsecase.RecommendationUsecase,
	userUc userUsecase.UserUsecase,
) *Handler {
	return &Handler{
		config:                cfg,
		verifier:              verifier,
		insightHandler:        insightDelivery.NewInsightHandler(insightUc),
		recommendationHandler: recommendationDelivery.NewRecommendationHandler(recommendationUc),
		userHandler:           userDelivery.NewUserHandler(userUc),
	}
}

// Engine builds the gin engine with CORS and the route table. Split from
// Start so tests can drive it with httptest.
func (h *Handler) Engine() *gin.Engine {
	if !h.config.TestMode() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	SetupRoutes(r, h.verifier, h.config.TestMode(), h.insightHandler, h.recommendationHandler, h.userHandler)
	return r
}

// Start runs the HTTP server on addr.
func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
