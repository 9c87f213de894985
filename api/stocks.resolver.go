package api

import (
	"cseinvest/internal/domain"
	"cseinvest/internal/repository"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stockResponse struct {
	StockID     uuid.UUID `json:"stockID"`
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"companyName"`
	Sector      string    `json:"sector"`
	IsActive    bool      `json:"isActive"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func newStockResponse(s domain.Stock) stockResponse {
	return stockResponse{
		StockID:     s.StockID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Sector:      s.Sector,
		IsActive:    s.IsActive,
		LastUpdated: s.LastUpdated,
	}
}

type stockRequest struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"companyName"`
	Sector      string `json:"sector"`
	IsActive    *bool  `json:"isActive"`
}

func (r stockRequest) validate() error {
	if strings.TrimSpace(r.Symbol) == "" {
		return fmt.Errorf("symbol is required")
	}
	if len(r.Symbol) > 10 {
		return fmt.Errorf("symbol %s is longer than 10 characters", r.Symbol)
	}
	if strings.TrimSpace(r.CompanyName) == "" {
		return fmt.Errorf("company name is required")
	}
	if r.Sector != "" && !domain.IsKnownSector(r.Sector) {
		return fmt.Errorf("unknown sector %s", r.Sector)
	}
	return nil
}

func (r stockRequest) toDomain(stockID uuid.UUID) domain.Stock {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return domain.Stock{
		StockID:     stockID,
		Symbol:      strings.ToUpper(strings.TrimSpace(r.Symbol)),
		CompanyName: strings.TrimSpace(r.CompanyName),
		Sector:      r.Sector,
		IsActive:    isActive,
	}
}

func (m ApiHandler) listStocks(c *gin.Context) {
	stocks, err := m.StockRepository.List(repository.StockListFilter{
		ActiveOnly: c.Query("activeOnly") == "true",
	})
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

func (m ApiHandler) addStock(c *gin.Context) {
	var requestBody stockRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if err := requestBody.validate(); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	existing, err := m.StockRepository.GetBySymbol(requestBody.toDomain(uuid.Nil).Symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if existing != nil {
		returnErrorJsonCode(fmt.Errorf("stock %s already exists", existing.Symbol), c, http.StatusConflict)
		return
	}

	inserted, err := m.StockRepository.Add(nil, repository.StockFromDomain(requestBody.toDomain(uuid.Nil)))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newStockResponse(repository.StockToDomain(*inserted)))
}

func (m ApiHandler) updateStock(c *gin.Context) {
	stockID, err := uuid.Parse(c.Param("stockID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid stock id: %w", err), c, http.StatusBadRequest)
		return
	}

	var requestBody stockRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if err := requestBody.validate(); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	if _, err := m.StockRepository.Get(stockID); err != nil {
		returnErrorJson(err, c)
		return
	}

	updated, err := m.StockRepository.Update(nil, repository.StockFromDomain(requestBody.toDomain(stockID)))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newStockResponse(repository.StockToDomain(*updated)))
}

func (m ApiHandler) deactivateStock(c *gin.Context) {
	stockID, err := uuid.Parse(c.Param("stockID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid stock id: %w", err), c, http.StatusBadRequest)
		return
	}

	if err := m.StockRepository.Deactivate(nil, stockID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
