package domain

import "time"

// Priority represents follow-up priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RecommendationType selects which slot a manually created recommendation
// fills.
type RecommendationType string

const (
	RecommendationTypeContact  RecommendationType = "contact"
	RecommendationTypeAction   RecommendationType = "action"
	RecommendationTypeLearning RecommendationType = "learning"
)

// Valid reports whether t is one of the known recommendation types.
func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendationTypeContact, RecommendationTypeAction, RecommendationTypeLearning:
		return true
	}
	return false
}

// Contact is a contact prioritized for follow-up.
type Contact struct {
	Name     string   `json:"name"`
	Company  string   `json:"company"`
	Reason   string   `json:"reason"`
	Priority Priority `json:"priority"`
}

// Action is a concrete follow-up action with a deadline date (YYYY-MM-DD).
type Action struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// LearningTip points at a learning resource.
type LearningTip struct {
	Title    string `json:"title"`
	Resource string `json:"resource"`
}

// RecommendationSet is an immutable snapshot of generated contact
// recommendations. A new generation always creates a new record.
type RecommendationSet struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	UserID      *string      `json:"userId,omitempty" gorm:"column:user_id;index"`
	Contacts    []Contact    `json:"contacts" gorm:"column:contacts;type:jsonb;serializer:json"`
	Actions     []Action     `json:"actions" gorm:"column:actions;type:jsonb;serializer:json"`
	LearningTip *LearningTip `json:"learningTip,omitempty" gorm:"column:learning_tip;type:jsonb;serializer:json"`
	CreatedAt   time.Time    `json:"createdAt" gorm:"column:created_at"`
}

func (RecommendationSet) TableName() string {
	return "recommendations"
}
