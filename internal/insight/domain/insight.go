package domain

import "time"

// Sentiment classifies how a trend reads for the business.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// InsightType selects which slot a manually created insight fills.
type InsightType string

const (
	InsightTypeTrend       InsightType = "trend"
	InsightTypeOpportunity InsightType = "opportunity"
	InsightTypeChallenge   InsightType = "challenge"
)

// Valid reports whether t is one of the known insight types.
func (t InsightType) Valid() bool {
	switch t {
	case InsightTypeTrend, InsightTypeOpportunity, InsightTypeChallenge:
		return true
	}
	return false
}

// IndustryTrend is one observed trend within the user's industry.
type IndustryTrend struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sentiment   Sentiment `json:"sentiment"`
}

// MarketOpportunity is one opening worth pursuing.
type MarketOpportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WeeklyChallenge is the suggested micro-challenge of the week.
type WeeklyChallenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// InsightSet is an immutable snapshot of generated business insights.
// A new generation always creates a new record.
type InsightSet struct {
	ID                  string              `json:"id" gorm:"primaryKey"`
	UserID              *string             `json:"userId,omitempty" gorm:"column:user_id;index"`
	IndustryTrends      []IndustryTrend     `json:"industryTrends" gorm:"column:industry_trends;type:jsonb;serializer:json"`
	MarketOpportunities []MarketOpportunity `json:"marketOpportunities" gorm:"column:market_opportunities;type:jsonb;serializer:json"`
	WeeklyChallenge     *WeeklyChallenge    `json:"weeklyChallenge,omitempty" gorm:"column:weekly_challenge;type:jsonb;serializer:json"`
	CreatedAt           time.Time           `json:"createdAt" gorm:"column:created_at"`
}

func (InsightSet) TableName() string {
	return "insights"
}
