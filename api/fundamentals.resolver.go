package api

import (
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/repository"
	l2_service "cseinvest/internal/service/l2"
	"cseinvest/internal/util"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fundamentalsResponse struct {
	StockID          uuid.UUID        `json:"stockID"`
	Date             string           `json:"date"`
	MarketPrice      decimal.Decimal  `json:"marketPrice"`
	NAV              decimal.Decimal  `json:"nav"`
	EPS              decimal.Decimal  `json:"eps"`
	AnnualDividend   decimal.Decimal  `json:"annualDividend"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`
	NetProfitMargin  *decimal.Decimal `json:"netProfitMargin"`
	PERatio          decimal.Decimal  `json:"peRatio"`
	ROE              decimal.Decimal  `json:"roe"`
	DividendYield    decimal.Decimal  `json:"dividendYield"`
	DebtToEquity     decimal.Decimal  `json:"debtToEquity"`
	PBV              *decimal.Decimal `json:"pbv"`
	EarningsYield    *decimal.Decimal `json:"earningsYield"`
}

func newFundamentalsResponse(f model.FundamentalData) fundamentalsResponse {
	snapshot := repository.FundamentalsToDomain(f)
	return fundamentalsResponse{
		StockID:          f.StockID,
		Date:             util.FormatDate(f.Date),
		MarketPrice:      f.MarketPrice,
		NAV:              f.Nav,
		EPS:              f.Eps,
		AnnualDividend:   f.AnnualDividend,
		TotalLiabilities: f.TotalLiabilities,
		TotalEquity:      f.TotalEquity,
		NetProfitMargin:  f.NetProfitMargin,
		PERatio:          snapshot.PERatio().Round(2),
		ROE:              snapshot.ROE().Round(2),
		DividendYield:    snapshot.DividendYield().Round(2),
		DebtToEquity:     snapshot.DebtToEquity().Round(2),
		PBV:              roundPointer(snapshot.PBV()),
		EarningsYield:    roundPointer(snapshot.EarningsYield()),
	}
}

func roundPointer(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	return util.DecimalPointer(d.Round(2))
}

func (m ApiHandler) getFundamentals(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	stock, err := m.StockRepository.GetBySymbol(symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if stock == nil {
		returnErrorJson(fmt.Errorf("%w: %s", l2_service.ErrStockNotFound, symbol), c)
		return
	}

	history, err := m.FundamentalsRepository.ListForStock(stock.StockID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []fundamentalsResponse{}
	for _, f := range history {
		out = append(out, newFundamentalsResponse(f))
	}

	c.JSON(200, out)
}

type recordFundamentalsRequest struct {
	Symbol           string           `json:"symbol"`
	Date             string           `json:"date"`
	MarketPrice      *decimal.Decimal `json:"marketPrice"`
	NAV              *decimal.Decimal `json:"nav"`
	EPS              decimal.Decimal  `json:"eps"`
	AnnualDividend   decimal.Decimal  `json:"annualDividend"`
	TotalLiabilities decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal  `json:"totalEquity"`
	NetProfitMargin  *decimal.Decimal `json:"netProfitMargin"`
}

// recordFundamentals stores a manually entered snapshot and rescores the
// market for that date.
func (m ApiHandler) recordFundamentals(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody recordFundamentalsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, http.StatusBadRequest)
		return
	}
	date, err := parseOptionalDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	f, err := m.DataCollectionService.RecordFundamentals(ctx, l2_service.RecordFundamentalsInput{
		Symbol:           strings.ToUpper(requestBody.Symbol),
		Date:             date,
		MarketPrice:      requestBody.MarketPrice,
		NAV:              requestBody.NAV,
		EPS:              requestBody.EPS,
		AnnualDividend:   requestBody.AnnualDividend,
		TotalLiabilities: requestBody.TotalLiabilities,
		TotalEquity:      requestBody.TotalEquity,
		NetProfitMargin:  requestBody.NetProfitMargin,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if _, err := m.RecommendationService.ComputeScores(ctx, date); err != nil {
		returnErrorJson(fmt.Errorf("saved fundamentals but failed to rescore: %w", err), c)
		return
	}

	c.JSON(200, newFundamentalsResponse(*f))
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return util.Today(), nil
	}
	date, err := util.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return date, nil
}
