package api

import (
	l3_service "cseinvest/internal/service/l3"
	"cseinvest/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type dashboardResponse struct {
	MonthlyInvestmentAmount decimal.Decimal          `json:"monthlyInvestmentAmount"`
	TotalRecommended        decimal.Decimal          `json:"totalRecommended"`
	RecommendationDate      *string                  `json:"recommendationDate"`
	Recommendations         []recommendationResponse `json:"recommendations"`
	Scores                  []scoreResponse          `json:"scores"`
	ScoreSummary            *l3_service.ScoreSummary `json:"scoreSummary"`
}

func (m ApiHandler) getDashboard(c *gin.Context) {
	dashboard, err := m.DashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	var date *string
	if dashboard.RecommendationDate != nil {
		date = util.StringPointer(util.FormatDate(*dashboard.RecommendationDate))
	}

	c.JSON(200, dashboardResponse{
		MonthlyInvestmentAmount: dashboard.MonthlyInvestmentAmount,
		TotalRecommended:        dashboard.TotalRecommended,
		RecommendationDate:      date,
		Recommendations:         newRecommendationResponses(dashboard.Recommendations),
		Scores:                  newScoreResponses(dashboard.Scores),
		ScoreSummary:            dashboard.ScoreSummary,
	})
}
