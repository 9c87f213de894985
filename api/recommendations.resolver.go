package api

import (
	"cseinvest/internal/domain"
	"cseinvest/internal/repository"
	l2_service "cseinvest/internal/service/l2"
	"cseinvest/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type recommendationResponse struct {
	StockID            uuid.UUID       `json:"stockID"`
	Symbol             string          `json:"symbol,omitempty"`
	CompanyName        string          `json:"companyName,omitempty"`
	RecommendationDate string          `json:"recommendationDate"`
	RecommendedAmount  decimal.Decimal `json:"recommendedAmount"`
	Reason             string          `json:"reason"`
	LastUpdated        time.Time       `json:"lastUpdated"`
}

func newRecommendationResponse(r domain.AllocationRecommendation) recommendationResponse {
	return recommendationResponse{
		StockID:            r.StockID,
		RecommendationDate: util.FormatDate(r.RecommendationDate),
		RecommendedAmount:  r.RecommendedAmount,
		Reason:             r.Reason,
		LastUpdated:        r.LastUpdated,
	}
}

func newRecommendationResponses(in []repository.RecommendationWithStock) []recommendationResponse {
	out := []recommendationResponse{}
	for _, r := range in {
		resp := newRecommendationResponse(repository.RecommendationToDomain(r.InvestmentRecommendation))
		resp.Symbol = r.Stock.Symbol
		resp.CompanyName = r.Stock.CompanyName
		out = append(out, resp)
	}
	return out
}

type getRecommendationsResponse struct {
	Recommendations []recommendationResponse `json:"recommendations"`
	Total           decimal.Decimal          `json:"total"`
}

func (m ApiHandler) getRecommendations(c *gin.Context) {
	recs, err := m.RecommendationService.GetLatestRecommendations(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getRecommendationsResponse{
		Recommendations: newRecommendationResponses(recs),
		Total:           repository.SumAmounts(recs),
	})
}

type generateRecommendationsRequest struct {
	Date   string           `json:"date"`
	Budget *decimal.Decimal `json:"budget"`
}

func (m ApiHandler) generateRecommendations(c *gin.Context) {
	var requestBody generateRecommendationsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}
	}
	date, err := parseOptionalDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if requestBody.Budget != nil && !requestBody.Budget.IsPositive() {
		returnErrorJsonCode(errInvalidBudget(*requestBody.Budget), c, http.StatusBadRequest)
		return
	}

	recs, err := m.RecommendationService.GenerateRecommendations(c.Request.Context(), l2_service.GenerateRecommendationsInput{
		Date:   date,
		Budget: requestBody.Budget,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []recommendationResponse{}
	for _, r := range recs {
		out = append(out, newRecommendationResponse(r))
	}

	c.JSON(200, getRecommendationsResponse{
		Recommendations: out,
		Total:           domain.SumRecommended(recs),
	})
}
