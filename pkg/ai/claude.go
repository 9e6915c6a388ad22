package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"affarsradar-backend/pkg/apperrors"
)

const anthropicURL = "https://api.anthropic.com/v1/messages"

const insightsPrompt = `Generera affärsinsikter för branschen %s. Inkludera:
1. Aktuella trender inom branschen
2. Potentiella affärsmöjligheter
3. Risker att vara medveten om
4. En rekommenderad mikro-utmaning för veckan

Formatera svaret som JSON med följande struktur:
{
  "trends": [{"title": "Trend titel", "description": "Beskrivning", "sentiment": "positive/neutral/negative"}],
  "opportunities": [{"title": "Möjlighet titel", "description": "Beskrivning"}],
  "risks": [{"title": "Risk titel", "description": "Beskrivning"}],
  "weeklyChallenge": {"title": "Utmaningens titel", "description": "Beskrivning"}
}

Svara enbart med JSON-data, ingen annan text.`

const recommendationsPrompt = `Som en AI-assistent för affärsinsikter, analysera följande kontakter och tidigare interaktioner för att ge personliga rekommendationer.

KONTAKTER:
%s

TIDIGARE INTERAKTIONER:
%s

Baserat på denna information, identifiera:
1. De 3 kontakter som bör prioriteras för uppföljning, med orsak och prioritetsnivå
2. 2-3 rekommenderade åtgärder för att förbättra affärsrelationerna
3. Ett lärandetips relaterat till säljarbete eller affärsutveckling

Formatera svaret som JSON med följande struktur:
{
  "priorityContacts": [
    {"name": "Namn", "company": "Företag", "reason": "Anledning till uppföljning", "priority": "high/medium/low"}
  ],
  "recommendedActions": [
    {"title": "Åtgärd", "description": "Beskrivning", "deadline": "YYYY-MM-DD"}
  ],
  "learningTip": {"title": "Titel", "resource": "Resurs"}
}

Svara enbart med JSON-data, ingen annan text.`

// ClaudeGenerator implements Generator against the Anthropic messages API.
type ClaudeGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClaudeGenerator creates a Claude-backed generator. model may be empty,
// in which case the Config default applies upstream.
func NewClaudeGenerator(apiKey, model string) *ClaudeGenerator {
	if model == "" {
		model = "claude-3-7-sonnet-20250219"
	}
	return &ClaudeGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// GenerateBusinessInsights asks Claude for industry insights and parses the
// JSON body of the reply. Uses a low temperature so the shape stays stable.
func (g *ClaudeGenerator) GenerateBusinessInsights(ctx context.Context, industry string) (*InsightPayload, error) {
	prompt := fmt.Sprintf(insightsPrompt, industry)
	text, err := g.call(ctx, prompt, 0.2, 1024)
	if err != nil {
		return nil, err
	}

	var payload InsightPayload
	if err := json.Unmarshal([]byte(extractJSON(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBadResponse, err)
	}
	return &payload, nil
}

// GenerateContactRecommendations asks Claude to prioritize contacts based on
// interaction history.
func (g *ClaudeGenerator) GenerateContactRecommendations(ctx context.Context, contacts, interactions []map[string]interface{}) (*RecommendationPayload, error) {
	contactsText, _ := json.Marshal(contacts)
	interactionsText, _ := json.Marshal(interactions)

	prompt := fmt.Sprintf(recommendationsPrompt, contactsText, interactionsText)
	text, err := g.call(ctx, prompt, 0.3, 1024)
	if err != nil {
		return nil, err
	}

	var payload RecommendationPayload
	if err := json.Unmarshal([]byte(extractJSON(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBadResponse, err)
	}
	return &payload, nil
}

func (g *ClaudeGenerator) call(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if temperature < 0 {
		temperature = 0
	}
	if temperature > 1 {
		temperature = 1
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	body, _ := json.Marshal(claudeRequest{
		Model:       g.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages:    []claudeMessage{{Role: "user", Content: prompt}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: claude API %d: %s", apperrors.ErrGeneration, resp.StatusCode, string(b))
	}

	var cr claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrBadResponse, err)
	}
	if len(cr.Content) == 0 {
		return "", fmt.Errorf("%w: empty claude response", apperrors.ErrBadResponse)
	}
	return cr.Content[0].Text, nil
}

// extractJSON strips markdown fences and any text around the outermost JSON
// object, since the model occasionally wraps its answer despite the prompt.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "{"); i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i {
			return text[i : j+1]
		}
	}
	return text
}
