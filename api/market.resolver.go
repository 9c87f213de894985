package api

import (
	"cseinvest/internal/repository"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) searchCompanies(c *gin.Context) {
	companies, err := m.MarketDataService.SearchCompanies(c.Request.Context(), c.Query("search"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, companies)
}

func (m ApiHandler) getRelatedSymbols(c *gin.Context) {
	symbols, err := m.MarketDataService.GetRelatedStockSymbols(c.Request.Context(), strings.ToUpper(c.Param("symbol")))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, symbols)
}

func (m ApiHandler) collectStocks(c *gin.Context) {
	stocks, err := m.DataCollectionService.CollectStocks(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []stockResponse{}
	for _, s := range stocks {
		out = append(out, newStockResponse(repository.StockToDomain(s)))
	}

	c.JSON(200, out)
}

type collectFundamentalsRequest struct {
	Date string `json:"date"`
}

type collectFundamentalsResponse struct {
	Collected []fundamentalsResponse `json:"collected"`
	Failed    []string               `json:"failed"`
}

func (m ApiHandler) collectFundamentals(c *gin.Context) {
	var requestBody collectFundamentalsRequest
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

	result, err := m.DataCollectionService.CollectAllFundamentals(c.Request.Context(), date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := collectFundamentalsResponse{
		Collected: []fundamentalsResponse{},
		Failed:    result.Failed,
	}
	if out.Failed == nil {
		out.Failed = []string{}
	}
	for _, f := range result.Collected {
		out.Collected = append(out.Collected, newFundamentalsResponse(f))
	}

	c.JSON(200, out)
}

