package main

import (
	"log"

	"gorm.io/gorm"

	api "affarsradar-backend/cmd/api"
	insightDomain "affarsradar-backend/internal/insight/domain"
	insightRepo "affarsradar-backend/internal/insight/repository"
	insightUsecase "affarsradar-backend/internal/insight/usecase"
	recommendationDomain "affarsradar-backend/internal/recommendation/domain"
	recommendationRepo "affarsradar-backend/internal/recommendation/repository"
	recommendationUsecase "affarsradar-backend/internal/recommendation/usecase"
	userDomain "affarsradar-backend/internal/user/domain"
	userRepo "affarsradar-backend/internal/user/repository"
	userUsecase "affarsradar-backend/internal/user/usecase"
	"affarsradar-backend/pkg/ai"
	"affarsradar-backend/pkg/config"
	"affarsradar-backend/pkg/database"
	"affarsradar-backend/pkg/logger"
	"affarsradar-backend/pkg/supabase"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logMode := "production"
	if cfg.TestMode() {
		logMode = "development"
	}
	appLog, err := logger.New(logMode)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer appLog.Sync()

	// Initialize repositories (dependency injection). Test mode swaps the
	// whole persistence gateway for the in-memory store; callers never
	// branch again.
	var (
		insights        insightRepo.InsightRepository
		recommendations recommendationRepo.RecommendationRepository
		users           userRepo.UserRepository
	)
	if cfg.TestMode() {
		appLog.Info("running in test mode with in-memory store and mock generation")
		insights = insightRepo.NewMemoryInsightRepository()
		recommendations = recommendationRepo.NewMemoryRecommendationRepository()
		users = userRepo.NewMemoryUserRepository()
	} else {
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			appLog.Fatal("failed to connect to database", "error", err)
		}

		// Auto-migrate database schemas
		if err := db.AutoMigrate(
			&insightDomain.InsightSet{},
			&recommendationDomain.RecommendationSet{},
			&userDomain.Profile{},
			&userDomain.UserSettings{},
		); err != nil {
			appLog.Fatal("failed to migrate database", "error", err)
		}

		// Profile writes prefer elevated credentials; without them the user
		// repository degrades and logs a warning per write.
		var adminDB *gorm.DB
		if cfg.SupabaseServiceRoleKey != "" {
			adminDB = db
		}

		insights = insightRepo.NewGormInsightRepository(db)
		recommendations = recommendationRepo.NewGormRecommendationRepository(db)
		users = userRepo.NewGormUserRepository(db, adminDB, appLog)
	}

	// Generation gateway: mock in test mode, Claude otherwise.
	generator := ai.NewGenerator(cfg)

	// Recommendations are derived deterministically from the submitted
	// contacts unless a live generator is available.
	var recommendationGenerator ai.Generator
	if !cfg.TestMode() && cfg.ClaudeAPIKey != "" {
		recommendationGenerator = generator
	}

	// Initialize use cases
	insightUc := insightUsecase.NewInsightUsecase(insights, generator, appLog)
	recommendationUc := recommendationUsecase.NewRecommendationUsecase(recommendations, recommendationGenerator, appLog)
	userUc := userUsecase.NewUserUsecase(users, appLog)

	// Token verification is delegated to Supabase auth
	verifier := supabase.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseJWTSecret)

	// Initialize HTTP handler and start server
	handler := api.NewHandler(cfg, verifier, insightUc, recommendationUc, userUc)

	appLog.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		appLog.Fatal("failed to start server", "error", err)
	}
}
