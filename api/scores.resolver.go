package api

import (
	"cseinvest/internal/domain"
	"cseinvest/internal/repository"
	"cseinvest/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type scoreResponse struct {
	StockID             uuid.UUID       `json:"stockID"`
	Symbol              string          `json:"symbol,omitempty"`
	CompanyName         string          `json:"companyName,omitempty"`
	ScoreDate           string          `json:"scoreDate"`
	PEScore             decimal.Decimal `json:"peScore"`
	ROEScore            decimal.Decimal `json:"roeScore"`
	DividendYieldScore  decimal.Decimal `json:"dividendYieldScore"`
	DebtEquityScore     decimal.Decimal `json:"debtEquityScore"`
	SupplementaryScore  decimal.Decimal `json:"supplementaryScore"`
	SupplementaryMetric string          `json:"supplementaryMetric"`
	TotalScore          decimal.Decimal `json:"totalScore"`
	Rank                int             `json:"rank"`
}

func newScoreResponse(s domain.ScoreRecord) scoreResponse {
	return scoreResponse{
		StockID:             s.StockID,
		ScoreDate:           util.FormatDate(s.ScoreDate),
		PEScore:             s.PEScore.Round(2),
		ROEScore:            s.ROEScore.Round(2),
		DividendYieldScore:  s.DividendYieldScore.Round(2),
		DebtEquityScore:     s.DebtEquityScore.Round(2),
		SupplementaryScore:  s.SupplementaryScore.Round(2),
		SupplementaryMetric: string(s.SupplementaryMetric),
		TotalScore:          s.TotalScore.Round(2),
		Rank:                s.Rank,
	}
}

func newScoreResponses(in []repository.StockScoreWithStock) []scoreResponse {
	out := []scoreResponse{}
	for _, s := range in {
		r := newScoreResponse(repository.StockScoreToDomain(s.StockScore))
		r.Symbol = s.Stock.Symbol
		r.CompanyName = s.Stock.CompanyName
		out = append(out, r)
	}
	return out
}

func (m ApiHandler) getScores(c *gin.Context) {
	scores, err := m.RecommendationService.GetLatestScores(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newScoreResponses(scores))
}

type computeScoresRequest struct {
	Date string `json:"date"`
}

func (m ApiHandler) computeScores(c *gin.Context) {
	var requestBody computeScoresRequest
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

	scores, err := m.RecommendationService.ComputeScores(c.Request.Context(), date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []scoreResponse{}
	for _, s := range scores {
		out = append(out, newScoreResponse(s))
	}

	c.JSON(200, out)
}
