package l3_service

import (
	"context"
	"cseinvest/internal/repository"
	l1_service "cseinvest/internal/service/l1"
	l2_service "cseinvest/internal/service/l2"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
}

type Dashboard struct {
	MonthlyInvestmentAmount decimal.Decimal                      `json:"monthlyInvestmentAmount"`
	TotalRecommended        decimal.Decimal                      `json:"totalRecommended"`
	RecommendationDate      *time.Time                           `json:"recommendationDate"`
	Recommendations         []repository.RecommendationWithStock `json:"recommendations"`
	Scores                  []repository.StockScoreWithStock     `json:"scores"`
	ScoreSummary            *ScoreSummary                        `json:"scoreSummary"`
}

type dashboardServiceHandler struct {
	RecommendationService l2_service.RecommendationService
	SettingsService       l1_service.SettingsService
}

func NewDashboardService(recommendationService l2_service.RecommendationService, settingsService l1_service.SettingsService) DashboardService {
	return dashboardServiceHandler{
		RecommendationService: recommendationService,
		SettingsService:       settingsService,
	}
}

func (h dashboardServiceHandler) GetDashboard(ctx context.Context) (*Dashboard, error) {
	amount, err := h.SettingsService.GetMonthlyInvestmentAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	recommendations, err := h.RecommendationService.GetLatestRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	scores, err := h.RecommendationService.GetLatestScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	totals := []decimal.Decimal{}
	for _, s := range scores {
		totals = append(totals, s.TotalScore)
	}
	summary, err := CalculateScoreSummary(totals)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	var recommendationDate *time.Time
	if len(recommendations) > 0 {
		recommendationDate = &recommendations[0].RecommendationDate
	}

	return &Dashboard{
		MonthlyInvestmentAmount: amount,
		TotalRecommended:        repository.SumAmounts(recommendations),
		RecommendationDate:      recommendationDate,
		Recommendations:         recommendations,
		Scores:                  scores,
		ScoreSummary:            summary,
	}, nil
}
