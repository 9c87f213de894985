package cse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultBaseUrl = "https://www.cse.lk"

// the market cap endpoint rejects requests without this envelope
const listByMarketCapBody = `{"headers":{"normalizedNames":{},"lazyUpdate":null}}`

type Client interface {
	GetAllStocksData(ctx context.Context) ([]StockMarketData, error)
	GetStockDataBySymbol(ctx context.Context, symbol string) (*StockMarketData, error)
	GetAllStocksByCompanyName(ctx context.Context, companyName string) ([]StockMarketData, error)
	GetCompanyList(ctx context.Context) ([]CompanySearchResult, error)
	SearchCompaniesByName(ctx context.Context, searchTerm string) ([]CompanySearchResult, error)
	GetStockList(ctx context.Context) ([]ListedStock, error)
	GetFundamentals(ctx context.Context, symbol string) (*CompanyFundamentals, error)
}

type clientHandler struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewClient(baseUrl string) Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	return clientHandler{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
	}
}

type StockMarketData struct {
	ID               int
	CompanyName      string
	Symbol           string
	MarketPrice      decimal.Decimal
	IssuedQuantity   int64
	High             *decimal.Decimal
	Low              *decimal.Decimal
	Change           *decimal.Decimal
	PercentageChange *decimal.Decimal
	LastUpdated      time.Time
}

type CompanySearchResult struct {
	CompanyName string   `json:"companyName"`
	Symbols     []string `json:"symbols"`
}

func (c CompanySearchResult) HasMultipleStocks() bool {
	return len(c.Symbols) > 1
}

type stockListResponse struct {
	Stocks []stockInfo `json:"reqByMarketcap"`
}

type stockInfo struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Symbol           string           `json:"symbol"`
	High             *decimal.Decimal `json:"high"`
	Low              *decimal.Decimal `json:"low"`
	PercentageChange *decimal.Decimal `json:"percentageChange"`
	Change           *decimal.Decimal `json:"change"`
	Price            *decimal.Decimal `json:"price"`
	IssuedQuantity   *int64           `json:"issuedQTY"`
}

func (c clientHandler) GetAllStocksData(ctx context.Context) ([]StockMarketData, error) {
	url := c.BaseUrl + "/api/list_by_market_cap"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(listByMarketCapBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("Origin", DefaultBaseUrl)
	req.Header.Set("Referer", DefaultBaseUrl+"/")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get stocks by market cap: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get stocks by market cap with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseJson := stockListResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stocks by market cap: %w", err)
	}

	now := time.Now().UTC()
	out := []StockMarketData{}
	for _, s := range responseJson.Stocks {
		if s.Symbol == "" {
			continue
		}
		data := StockMarketData{
			ID:               s.ID,
			CompanyName:      s.Name,
			Symbol:           s.Symbol,
			High:             s.High,
			Low:              s.Low,
			Change:           s.Change,
			PercentageChange: s.PercentageChange,
			LastUpdated:      now,
		}
		if s.Price != nil {
			data.MarketPrice = *s.Price
		}
		if s.IssuedQuantity != nil {
			data.IssuedQuantity = *s.IssuedQuantity
		}
		out = append(out, data)
	}

	return out, nil
}

// GetStockDataBySymbol returns nil when the symbol is not listed.
func (c clientHandler) GetStockDataBySymbol(ctx context.Context, symbol string) (*StockMarketData, error) {
	if symbol == "" {
		return nil, nil
	}

	all, err := c.GetAllStocksData(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if strings.EqualFold(s.Symbol, symbol) {
			return &s, nil
		}
	}

	return nil, nil
}

func (c clientHandler) GetAllStocksByCompanyName(ctx context.Context, companyName string) ([]StockMarketData, error) {
	if companyName == "" {
		return []StockMarketData{}, nil
	}

	all, err := c.GetAllStocksData(ctx)
	if err != nil {
		return nil, err
	}

	out := []StockMarketData{}
	for _, s := range all {
		if strings.EqualFold(s.CompanyName, companyName) {
			out = append(out, s)
		}
	}

	return out, nil
}

// GetCompanyList groups the listed symbols by company, sorted by name.
func (c clientHandler) GetCompanyList(ctx context.Context) ([]CompanySearchResult, error) {
	all, err := c.GetAllStocksData(ctx)
	if err != nil {
		return nil, err
	}

	return groupByCompany(all), nil
}

func (c clientHandler) SearchCompaniesByName(ctx context.Context, searchTerm string) ([]CompanySearchResult, error) {
	companies, err := c.GetCompanyList(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return companies, nil
	}

	out := []CompanySearchResult{}
	for _, company := range companies {
		if strings.Contains(strings.ToLower(company.CompanyName), term) {
			out = append(out, company)
		}
	}

	return out, nil
}

func groupByCompany(stocks []StockMarketData) []CompanySearchResult {
	symbolsByCompany := map[string][]string{}
	for _, s := range stocks {
		if s.CompanyName == "" {
			continue
		}
		symbolsByCompany[s.CompanyName] = append(symbolsByCompany[s.CompanyName], s.Symbol)
	}

	out := []CompanySearchResult{}
	for name, symbols := range symbolsByCompany {
		sort.Strings(symbols)
		out = append(out, CompanySearchResult{
			CompanyName: name,
			Symbols:     symbols,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompanyName < out[j].CompanyName
	})

	return out
}
