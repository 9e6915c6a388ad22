package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("CLAUDE_API_KEY", "")
	t.Setenv("CLAUDE_MODEL", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	require.Equal(t, "claude-3-7-sonnet-20250219", cfg.ClaudeModel)
	require.False(t, cfg.TestMode())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CLAUDE_API_KEY", "sk-real-key")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "sk-real-key", cfg.ClaudeAPIKey)
	require.Equal(t, "https://project.supabase.co", cfg.SupabaseURL)
	require.False(t, cfg.TestMode())
}

func TestTestModeSentinel(t *testing.T) {
	t.Setenv("CLAUDE_API_KEY", TestModeAPIKey)

	cfg := Load()
	require.True(t, cfg.TestMode())
}
