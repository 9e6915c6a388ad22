package ai

import "affarsradar-backend/pkg/config"

// NewGenerator creates a Generator from the process config.
// The sentinel test-mode API key always yields the mock; otherwise a real
// Claude client is returned. This is the only place the live/test split is
// decided — callers hold a Generator and never branch again.
func NewGenerator(cfg *config.Config) Generator {
	if cfg.TestMode() || cfg.ClaudeAPIKey == "" {
		return NewMockGenerator()
	}
	return NewClaudeGenerator(cfg.ClaudeAPIKey, cfg.ClaudeModel)
}
