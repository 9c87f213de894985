package l2_service

import (
	"context"
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/domain"
	"cseinvest/internal/logger"
	"cseinvest/internal/repository"
	l1_service "cseinvest/internal/service/l1"
	"cseinvest/internal/util"
	"cseinvest/pkg/cse"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrStockNotFound = errors.New("stock not found")

type DataCollectionService interface {
	CollectStocks(ctx context.Context) ([]model.Stock, error)
	CollectFundamentals(ctx context.Context, stock model.Stock, date time.Time) (*model.FundamentalData, error)
	CollectAllFundamentals(ctx context.Context, date time.Time) (*CollectFundamentalsResult, error)
	RecordFundamentals(ctx context.Context, in RecordFundamentalsInput) (*model.FundamentalData, error)
}

type CollectFundamentalsResult struct {
	Collected []model.FundamentalData
	Failed    []string
}

// RecordFundamentalsInput is a manually entered snapshot. A missing price is
// looked up on the market feed and a missing NAV is derived from the total
// equity.
type RecordFundamentalsInput struct {
	Symbol           string
	Date             time.Time
	MarketPrice      *decimal.Decimal
	NAV              *decimal.Decimal
	EPS              decimal.Decimal
	AnnualDividend   decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
	NetProfitMargin  *decimal.Decimal
}

type dataCollectionServiceHandler struct {
	CseClient              cse.Client
	StockRepository        repository.StockRepository
	FundamentalsRepository repository.FundamentalsRepository
	MarketDataService      l1_service.MarketDataService
}

func NewDataCollectionService(
	cseClient cse.Client,
	stockRepository repository.StockRepository,
	fundamentalsRepository repository.FundamentalsRepository,
	marketDataService l1_service.MarketDataService,
) DataCollectionService {
	return dataCollectionServiceHandler{
		CseClient:              cseClient,
		StockRepository:        stockRepository,
		FundamentalsRepository: fundamentalsRepository,
		MarketDataService:      marketDataService,
	}
}

// CollectStocks adds newly listed stocks and refreshes names and sectors of
// known ones.
func (h dataCollectionServiceHandler) CollectStocks(ctx context.Context) ([]model.Stock, error) {
	log := logger.FromContext(ctx)

	listed, err := h.CseClient.GetStockList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect stocks: %w", err)
	}

	out := []model.Stock{}
	for _, s := range listed {
		if s.Sector != "" && !domain.IsKnownSector(s.Sector) {
			log.Warnf("%s is listed under unknown sector %q", s.Symbol, s.Sector)
		}
		stock, err := h.StockRepository.Upsert(nil, repository.StockFromDomain(domain.Stock{
			Symbol:      s.Symbol,
			CompanyName: s.CompanyName,
			Sector:      s.Sector,
			IsActive:    true,
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to collect stocks: %w", err)
		}
		out = append(out, *stock)
	}

	log.Infof("collected %d stocks", len(out))

	return out, nil
}

func (h dataCollectionServiceHandler) CollectFundamentals(ctx context.Context, stock model.Stock, date time.Time) (*model.FundamentalData, error) {
	scraped, err := h.CseClient.GetFundamentals(ctx, stock.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to collect fundamentals for %s: %w", stock.Symbol, err)
	}

	in := RecordFundamentalsInput{
		Symbol:           stock.Symbol,
		Date:             date,
		EPS:              scraped.EPS,
		AnnualDividend:   scraped.AnnualDividend,
		TotalLiabilities: scraped.TotalLiabilities,
		TotalEquity:      scraped.TotalEquity,
	}
	if !scraped.MarketPrice.IsZero() {
		in.MarketPrice = util.DecimalPointer(scraped.MarketPrice)
	}
	if !scraped.NAV.IsZero() {
		in.NAV = util.DecimalPointer(scraped.NAV)
	}

	return h.save(ctx, stock, in)
}

// CollectAllFundamentals collects fundamentals for every active stock. A
// failing stock is logged and skipped.
func (h dataCollectionServiceHandler) CollectAllFundamentals(ctx context.Context, date time.Time) (*CollectFundamentalsResult, error) {
	log := logger.FromContext(ctx)

	stocks, err := h.StockRepository.List(repository.StockListFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to collect fundamentals: %w", err)
	}

	result := &CollectFundamentalsResult{
		Collected: []model.FundamentalData{},
		Failed:    []string{},
	}
	for _, stock := range stocks {
		f, err := h.CollectFundamentals(ctx, stock, date)
		if err != nil {
			log.Error(err)
			result.Failed = append(result.Failed, stock.Symbol)
			continue
		}
		result.Collected = append(result.Collected, *f)
	}

	log.Infof("collected fundamentals for %d stocks, %d failed", len(result.Collected), len(result.Failed))

	return result, nil
}

func (h dataCollectionServiceHandler) RecordFundamentals(ctx context.Context, in RecordFundamentalsInput) (*model.FundamentalData, error) {
	stock, err := h.StockRepository.GetBySymbol(in.Symbol)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("%w: %s", ErrStockNotFound, in.Symbol)
	}

	return h.save(ctx, *stock, in)
}

func (h dataCollectionServiceHandler) save(ctx context.Context, stock model.Stock, in RecordFundamentalsInput) (*model.FundamentalData, error) {
	var marketPrice decimal.Decimal
	if in.MarketPrice != nil {
		marketPrice = *in.MarketPrice
	} else {
		price, err := h.MarketDataService.GetMarketPrice(ctx, stock.Symbol)
		if err != nil {
			return nil, err
		}
		marketPrice = price
	}

	nav := decimal.Zero
	if in.NAV != nil {
		nav = *in.NAV
	} else if in.TotalEquity.IsPositive() {
		calculated, err := h.MarketDataService.CalculateNAV(ctx, stock.Symbol, in.TotalEquity)
		if err != nil {
			return nil, err
		}
		nav = calculated
	}

	date := in.Date
	if date.IsZero() {
		date = util.Today()
	}

	f, err := h.FundamentalsRepository.Upsert(nil, model.FundamentalData{
		StockID:          stock.StockID,
		Date:             date,
		MarketPrice:      marketPrice,
		Nav:              nav,
		Eps:              in.EPS,
		AnnualDividend:   in.AnnualDividend,
		TotalLiabilities: in.TotalLiabilities,
		TotalEquity:      in.TotalEquity,
		NetProfitMargin:  in.NetProfitMargin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save fundamentals for %s: %w", stock.Symbol, err)
	}

	return f, nil
}
