package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"affarsradar-backend/pkg/config"
)

func TestNewGeneratorSelection(t *testing.T) {
	g := NewGenerator(&config.Config{ClaudeAPIKey: config.TestModeAPIKey})
	require.IsType(t, &MockGenerator{}, g)

	g = NewGenerator(&config.Config{ClaudeAPIKey: ""})
	require.IsType(t, &MockGenerator{}, g)

	g = NewGenerator(&config.Config{ClaudeAPIKey: "sk-real-key", ClaudeModel: "claude-3-7-sonnet-20250219"})
	require.IsType(t, &ClaudeGenerator{}, g)
}
