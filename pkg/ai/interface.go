package ai

import "context"

// Trend is a single industry trend in a generated insight payload.
type Trend struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Sentiment   string `json:"sentiment"`
}

// Opportunity is a business opportunity or risk item.
type Opportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Challenge is the suggested micro-challenge of the week.
type Challenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// InsightPayload is the shape the generation backend is asked to produce
// for business insights.
type InsightPayload struct {
	Trends          []Trend       `json:"trends"`
	Opportunities   []Opportunity `json:"opportunities"`
	Risks           []Opportunity `json:"risks"`
	WeeklyChallenge *Challenge    `json:"weeklyChallenge,omitempty"`
}

// PriorityContact is a contact singled out for follow-up.
type PriorityContact struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

// RecommendedAction is a concrete follow-up action with a deadline.
type RecommendedAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// LearningTip points at a sales or business-development resource.
type LearningTip struct {
	Title    string `json:"title"`
	Resource string `json:"resource"`
}

// RecommendationPayload is the shape the generation backend is asked to
// produce for contact recommendations.
type RecommendationPayload struct {
	PriorityContacts   []PriorityContact   `json:"priorityContacts"`
	RecommendedActions []RecommendedAction `json:"recommendedActions"`
	LearningTip        *LearningTip        `json:"learningTip,omitempty"`
}

// Generator is the interface for business-insight generation backends.
// Implement this interface to add new providers (Claude, mock, etc.).
type Generator interface {
	GenerateBusinessInsights(ctx context.Context, industry string) (*InsightPayload, error)
	GenerateContactRecommendations(ctx context.Context, contacts, interactions []map[string]interface{}) (*RecommendationPayload, error)
}

// ProviderType represents the generation provider type.
type ProviderType string

const (
	ProviderClaude ProviderType = "claude"
	ProviderMock   ProviderType = "mock"
)
