package ai

import "context"

// MockGenerator returns fixed Swedish content without contacting any
// backend. Selected in test mode via the factory.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateBusinessInsights returns canned insights. The stock market
// industry has its own response shape; every other industry gets a generic
// template with the industry name substituted in.
func (m *MockGenerator) GenerateBusinessInsights(_ context.Context, industry string) (*InsightPayload, error) {
	if industry == "stockmarket" {
		return &InsightPayload{
			Trends: []Trend{
				{
					Title:       "Ökad volatilitet",
					Description: "Geopolitiska spänningar och inflationstryck orsakar ökad volatilitet på aktiemarknaden.",
					Sentiment:   "negative",
				},
				{
					Title:       "ESG-investeringar i fokus",
					Description: "Allt fler investerare prioriterar bolag med stark miljö-, social- och bolagsstyrningsprofil.",
					Sentiment:   "positive",
				},
				{
					Title:       "Nya investeringsplattformar",
					Description: "Digitala plattformar demokratiserar aktiemarknaden och attraherar nya investerare.",
					Sentiment:   "positive",
				},
			},
			Opportunities: []Opportunity{
				{
					Title:       "Utdelningsaktier",
					Description: "Företag med stabil direktavkastning erbjuder skydd i osäkra tider.",
				},
				{
					Title:       "Innovation inom fintechsektorn",
					Description: "Investeringar i företag som utvecklar nya finansiella teknologier visar stark potential.",
				},
			},
			Risks: []Opportunity{
				{
					Title:       "Regulatoriska förändringar",
					Description: "Nya regelverk för marknadsaktörer kan påverka investeringsstrategier.",
				},
				{
					Title:       "Likviditetsrisker",
					Description: "Olika marknadssegment kan drabbas av likviditetsutmaningar vid marknadsstress.",
				},
			},
			WeeklyChallenge: &Challenge{
				Title:       "Portföljöversyn",
				Description: "Genomför en analys av din portföljallokering och identifiera områden med obalans.",
			},
		}, nil
	}

	return &InsightPayload{
		Trends: []Trend{
			{
				Title:       "Ökad digitalisering",
				Description: "Företag inom " + industry + " investerar allt mer i digitala lösningar för att effektivisera verksamheten.",
				Sentiment:   "positive",
			},
			{
				Title:       "Hållbarhetsfokus",
				Description: "Konsumenter efterfrågar mer hållbara produkter och tjänster inom " + industry + ".",
				Sentiment:   "positive",
			},
			{
				Title:       "Kompetensbrist",
				Description: "Branschen har svårt att hitta rätt kompetens för specialiserade roller.",
				Sentiment:   "negative",
			},
		},
		Opportunities: []Opportunity{
			{
				Title:       "Nya marknader",
				Description: "Expandera till nya geografiska områden där efterfrågan ökar.",
			},
			{
				Title:       "Strategiska partnerskap",
				Description: "Samarbeta med kompletterande företag för att erbjuda helhetslösningar.",
			},
		},
		Risks: []Opportunity{
			{
				Title:       "Ökad konkurrens",
				Description: "Nya aktörer med innovativa affärsmodeller utmanar etablerade företag.",
			},
			{
				Title:       "Regulatoriska förändringar",
				Description: "Nya lagar och regler kan påverka verksamheten.",
			},
		},
		WeeklyChallenge: &Challenge{
			Title:       "Kundintervjuer",
			Description: "Genomför minst tre djupintervjuer med nyckelkunder för att identifiera förbättringsområden.",
		},
	}, nil
}

// GenerateContactRecommendations returns a canned recommendation set.
func (m *MockGenerator) GenerateContactRecommendations(_ context.Context, _, _ []map[string]interface{}) (*RecommendationPayload, error) {
	return &RecommendationPayload{
		PriorityContacts: []PriorityContact{
			{
				Name:     "Anna Andersson",
				Company:  "Tech Innovations AB",
				Reason:   "Visade intresse för er nya produkt vid senaste mötet",
				Priority: "high",
			},
			{
				Name:     "Erik Eriksson",
				Company:  "Stora Företaget AB",
				Reason:   "Har inte haft kontakt på över 3 månader",
				Priority: "medium",
			},
			{
				Name:     "Maria Svensson",
				Company:  "Digital Solutions",
				Reason:   "Nämnde budgetökning för nästa kvartal",
				Priority: "high",
			},
		},
		RecommendedActions: []RecommendedAction{
			{
				Title:       "Uppföljningsmöte",
				Description: "Boka uppföljningsmöte med Anna Andersson för att presentera produktdetaljer",
				Deadline:    "2025-03-10",
			},
			{
				Title:       "Nätverksevent",
				Description: "Delta i branscheventet nästa månad för att utöka kontaktnätet",
				Deadline:    "2025-03-15",
			},
		},
		LearningTip: &LearningTip{
			Title:    "Förbättra din säljpitch",
			Resource: "https://example.com/sales-pitch-techniques",
		},
	}, nil
}
