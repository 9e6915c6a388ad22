package config

import (
	"os"

	"github.com/joho/godotenv"
)

// TestModeAPIKey is the sentinel CLAUDE_API_KEY value that switches the whole
// process into test mode: in-memory store, mock generation, auth bypass.
const TestModeAPIKey = "dummy_api_key_for_testing"

type Config struct {
	Port                   string
	FrontendURL            string
	ClaudeAPIKey           string
	ClaudeModel            string
	DatabaseURL            string
	SupabaseURL            string
	SupabaseAnonKey        string
	SupabaseServiceRoleKey string
	SupabaseJWTSecret      string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		FrontendURL:            getEnv("FRONTEND_URL", "http://localhost:3000"),
		ClaudeAPIKey:           getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:            getEnv("CLAUDE_MODEL", "claude-3-7-sonnet-20250219"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:        getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
	}
}

// TestMode reports whether the sentinel API key is configured. In test mode
// every external backend is replaced by an in-process fake.
func (c *Config) TestMode() bool {
	return c.ClaudeAPIKey == TestModeAPIKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
