package l1_service

import (
	"context"
	"cseinvest/internal/logger"
	"cseinvest/pkg/cse"
	"fmt"

	"github.com/shopspring/decimal"
)

// MarketDataService derives per-share figures from the CSE market feed.
type MarketDataService interface {
	CalculateNAV(ctx context.Context, symbol string, totalEquity decimal.Decimal) (decimal.Decimal, error)
	GetTotalIssuedQuantity(ctx context.Context, symbol string) (int64, error)
	GetMarketPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	GetRelatedStockSymbols(ctx context.Context, symbol string) ([]StockSymbolInfo, error)
	SearchCompanies(ctx context.Context, searchTerm string) ([]cse.CompanySearchResult, error)
}

type StockSymbolInfo struct {
	Symbol         string          `json:"symbol"`
	IssuedQuantity int64           `json:"issuedQuantity"`
	MarketPrice    decimal.Decimal `json:"marketPrice"`
}

type marketDataServiceHandler struct {
	CseClient cse.Client
}

func NewMarketDataService(cseClient cse.Client) MarketDataService {
	return marketDataServiceHandler{
		CseClient: cseClient,
	}
}

// CalculateNAV spreads the company's total equity over the issued quantity
// of every share class it has listed. Returns 0 when nothing is issued.
func (h marketDataServiceHandler) CalculateNAV(ctx context.Context, symbol string, totalEquity decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	totalIssuedQty, err := h.GetTotalIssuedQuantity(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if totalIssuedQty <= 0 {
		log.Warnf("total issued quantity is %d for %s, cannot calculate nav", totalIssuedQty, symbol)
		return decimal.Zero, nil
	}

	nav := totalEquity.Div(decimal.NewFromInt(totalIssuedQty)).Round(2)
	log.Infof("calculated nav %s for %s (total equity %s, issued qty %d)", nav.String(), symbol, totalEquity.String(), totalIssuedQty)

	return nav, nil
}

func (h marketDataServiceHandler) GetTotalIssuedQuantity(ctx context.Context, symbol string) (int64, error) {
	related, err := h.relatedStocks(ctx, symbol)
	if err != nil {
		return 0, err
	}

	total := int64(0)
	for _, s := range related {
		total += s.IssuedQuantity
	}

	return total, nil
}

// GetMarketPrice returns the last traded price rounded to cents, or 0 for an
// unknown symbol.
func (h marketDataServiceHandler) GetMarketPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	stock, err := h.CseClient.GetStockDataBySymbol(ctx, symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get market price for %s: %w", symbol, err)
	}
	if stock == nil {
		logger.FromContext(ctx).Warnf("no market data for %s", symbol)
		return decimal.Zero, nil
	}

	return stock.MarketPrice.Round(2), nil
}

func (h marketDataServiceHandler) GetRelatedStockSymbols(ctx context.Context, symbol string) ([]StockSymbolInfo, error) {
	related, err := h.relatedStocks(ctx, symbol)
	if err != nil {
		return nil, err
	}

	out := []StockSymbolInfo{}
	for _, s := range related {
		out = append(out, StockSymbolInfo{
			Symbol:         s.Symbol,
			IssuedQuantity: s.IssuedQuantity,
			MarketPrice:    s.MarketPrice.Round(2),
		})
	}

	return out, nil
}

func (h marketDataServiceHandler) SearchCompanies(ctx context.Context, searchTerm string) ([]cse.CompanySearchResult, error) {
	out, err := h.CseClient.SearchCompaniesByName(ctx, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies by %q: %w", searchTerm, err)
	}
	return out, nil
}

// relatedStocks returns every listed stock of the company behind symbol.
func (h marketDataServiceHandler) relatedStocks(ctx context.Context, symbol string) ([]cse.StockMarketData, error) {
	stock, err := h.CseClient.GetStockDataBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock data for %s: %w", symbol, err)
	}
	if stock == nil {
		logger.FromContext(ctx).Warnf("no market data for %s", symbol)
		return []cse.StockMarketData{}, nil
	}

	related, err := h.CseClient.GetAllStocksByCompanyName(ctx, stock.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("failed to get stocks of %s: %w", stock.CompanyName, err)
	}

	return related, nil
}
