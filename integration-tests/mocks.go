package integration_tests

import (
	"context"
	"cseinvest/pkg/cse"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NewMockCseClientForTests serves a fixed market snapshot so flows that
// touch the CSE feed can run offline.
func NewMockCseClientForTests() cse.Client {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	return mockCseForTestsHandler{
		stocks: []cse.StockMarketData{
			{
				ID:             1,
				CompanyName:    "John Keells Holdings PLC",
				Symbol:         "JKH.N0000",
				MarketPrice:    decimal.NewFromInt(200),
				IssuedQuantity: 1000,
				LastUpdated:    now,
			},
			{
				ID:             2,
				CompanyName:    "Commercial Bank of Ceylon PLC",
				Symbol:         "COMB.N0000",
				MarketPrice:    decimal.RequireFromString("100.5"),
				IssuedQuantity: 900,
				LastUpdated:    now,
			},
			{
				ID:             3,
				CompanyName:    "Commercial Bank of Ceylon PLC",
				Symbol:         "COMB.X0000",
				MarketPrice:    decimal.RequireFromString("80.25"),
				IssuedQuantity: 100,
				LastUpdated:    now,
			},
		},
	}
}

type mockCseForTestsHandler struct {
	stocks []cse.StockMarketData
}

func (m mockCseForTestsHandler) GetAllStocksData(ctx context.Context) ([]cse.StockMarketData, error) {
	return m.stocks, nil
}

func (m mockCseForTestsHandler) GetStockDataBySymbol(ctx context.Context, symbol string) (*cse.StockMarketData, error) {
	for _, s := range m.stocks {
		if strings.EqualFold(s.Symbol, symbol) {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (m mockCseForTestsHandler) GetAllStocksByCompanyName(ctx context.Context, companyName string) ([]cse.StockMarketData, error) {
	out := []cse.StockMarketData{}
	for _, s := range m.stocks {
		if s.CompanyName == companyName {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m mockCseForTestsHandler) GetCompanyList(ctx context.Context) ([]cse.CompanySearchResult, error) {
	byCompany := map[string][]string{}
	for _, s := range m.stocks {
		byCompany[s.CompanyName] = append(byCompany[s.CompanyName], s.Symbol)
	}
	out := []cse.CompanySearchResult{}
	for name, symbols := range byCompany {
		out = append(out, cse.CompanySearchResult{CompanyName: name, Symbols: symbols})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompanyName < out[j].CompanyName
	})
	return out, nil
}

func (m mockCseForTestsHandler) SearchCompaniesByName(ctx context.Context, searchTerm string) ([]cse.CompanySearchResult, error) {
	companies, err := m.GetCompanyList(ctx)
	if err != nil {
		return nil, err
	}
	out := []cse.CompanySearchResult{}
	for _, c := range companies {
		if strings.Contains(strings.ToLower(c.CompanyName), strings.ToLower(searchTerm)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m mockCseForTestsHandler) GetStockList(ctx context.Context) ([]cse.ListedStock, error) {
	out := []cse.ListedStock{}
	for _, s := range m.stocks {
		out = append(out, cse.ListedStock{Symbol: s.Symbol, CompanyName: s.CompanyName})
	}
	return out, nil
}

func (m mockCseForTestsHandler) GetFundamentals(ctx context.Context, symbol string) (*cse.CompanyFundamentals, error) {
	return nil, fmt.Errorf("no fundamentals page for %s in tests", symbol)
}
