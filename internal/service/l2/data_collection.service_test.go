package l2_service

import (
	"context"
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/repository"
	mock_repository "cseinvest/internal/repository/mocks"
	mock_l1_service "cseinvest/internal/service/l1/mocks"
	"cseinvest/internal/util"
	"cseinvest/pkg/cse"
	mock_cse "cseinvest/pkg/cse/mocks"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dataCollectionMocks struct {
	cseClient              *mock_cse.MockClient
	stockRepository        *mock_repository.MockStockRepository
	fundamentalsRepository *mock_repository.MockFundamentalsRepository
	marketDataService      *mock_l1_service.MockMarketDataService
}

func newDataCollectionHandler(t *testing.T) (DataCollectionService, dataCollectionMocks) {
	ctrl := gomock.NewController(t)
	mocks := dataCollectionMocks{
		cseClient:              mock_cse.NewMockClient(ctrl),
		stockRepository:        mock_repository.NewMockStockRepository(ctrl),
		fundamentalsRepository: mock_repository.NewMockFundamentalsRepository(ctrl),
		marketDataService:      mock_l1_service.NewMockMarketDataService(ctrl),
	}
	handler := NewDataCollectionService(
		mocks.cseClient,
		mocks.stockRepository,
		mocks.fundamentalsRepository,
		mocks.marketDataService,
	)
	return handler, mocks
}

func returnUpserted(_ *sql.Tx, f model.FundamentalData) (*model.FundamentalData, error) {
	f.FundamentalDataID = uuid.New()
	return &f, nil
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestCollectStocks(t *testing.T) {
	handler, mocks := newDataCollectionHandler(t)

	mocks.cseClient.EXPECT().GetStockList(gomock.Any()).Return([]cse.ListedStock{
		{Symbol: "JKH.N0000", CompanyName: "John Keells Holdings PLC", Sector: "Diversified"},
		{Symbol: "ABC.N0000", CompanyName: "ABC PLC", Sector: ""},
	}, nil)
	mocks.stockRepository.EXPECT().
		Upsert(nil, model.Stock{Symbol: "JKH.N0000", CompanyName: "John Keells Holdings PLC", Sector: util.StringPointer("Diversified"), IsActive: true}).
		DoAndReturn(func(_ *sql.Tx, s model.Stock) (*model.Stock, error) {
			s.StockID = uuid.New()
			return &s, nil
		})
	mocks.stockRepository.EXPECT().
		Upsert(nil, model.Stock{Symbol: "ABC.N0000", CompanyName: "ABC PLC", IsActive: true}).
		DoAndReturn(func(_ *sql.Tx, s model.Stock) (*model.Stock, error) {
			s.StockID = uuid.New()
			return &s, nil
		})

	stocks, err := handler.CollectStocks(context.Background())
	require.NoError(t, err)
	require.Len(t, stocks, 2)
	require.Equal(t, "JKH.N0000", stocks[0].Symbol)
}

func TestCollectFundamentals(t *testing.T) {
	date := time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC)
	stock := model.Stock{StockID: uuid.New(), Symbol: "JKH.N0000", IsActive: true}

	t.Run("scraped figures are stored as is", func(t *testing.T) {
		handler, mocks := newDataCollectionHandler(t)

		mocks.cseClient.EXPECT().GetFundamentals(gomock.Any(), "JKH.N0000").Return(&cse.CompanyFundamentals{
			Symbol:           "JKH.N0000",
			MarketPrice:      dec("195.5"),
			NAV:              dec("150"),
			EPS:              dec("12"),
			AnnualDividend:   dec("3"),
			TotalLiabilities: dec("1000"),
			TotalEquity:      dec("2000"),
		}, nil)
		mocks.fundamentalsRepository.EXPECT().Upsert(nil, gomock.Any()).DoAndReturn(returnUpserted)

		f, err := handler.CollectFundamentals(context.Background(), stock, date)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(model.FundamentalData{
				StockID:          stock.StockID,
				Date:             date,
				MarketPrice:      dec("195.5"),
				Nav:              dec("150"),
				Eps:              dec("12"),
				AnnualDividend:   dec("3"),
				TotalLiabilities: dec("1000"),
				TotalEquity:      dec("2000"),
			}, *f, decimalComparer, cmpopts.IgnoreFields(model.FundamentalData{}, "FundamentalDataID")),
		)
	})

	t.Run("missing price and nav come from the market feed", func(t *testing.T) {
		handler, mocks := newDataCollectionHandler(t)

		mocks.cseClient.EXPECT().GetFundamentals(gomock.Any(), "JKH.N0000").Return(&cse.CompanyFundamentals{
			Symbol:      "JKH.N0000",
			EPS:         dec("12"),
			TotalEquity: dec("2000"),
		}, nil)
		mocks.marketDataService.EXPECT().GetMarketPrice(gomock.Any(), "JKH.N0000").Return(dec("190"), nil)
		mocks.marketDataService.EXPECT().CalculateNAV(gomock.Any(), "JKH.N0000", gomock.Any()).Return(dec("13.33"), nil)
		mocks.fundamentalsRepository.EXPECT().Upsert(nil, gomock.Any()).DoAndReturn(returnUpserted)

		f, err := handler.CollectFundamentals(context.Background(), stock, date)
		require.NoError(t, err)
		require.True(t, dec("190").Equal(f.MarketPrice))
		require.True(t, dec("13.33").Equal(f.Nav))
	})

	t.Run("scrape failure", func(t *testing.T) {
		handler, mocks := newDataCollectionHandler(t)

		mocks.cseClient.EXPECT().GetFundamentals(gomock.Any(), "JKH.N0000").Return(nil, errors.New("status 503"))

		_, err := handler.CollectFundamentals(context.Background(), stock, date)
		require.Error(t, err)
	})
}

func TestCollectAllFundamentals(t *testing.T) {
	date := time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC)
	ok := model.Stock{StockID: uuid.New(), Symbol: "OK.N0000", IsActive: true}
	broken := model.Stock{StockID: uuid.New(), Symbol: "BROKEN.N0000", IsActive: true}

	handler, mocks := newDataCollectionHandler(t)

	mocks.stockRepository.EXPECT().List(repository.StockListFilter{ActiveOnly: true}).Return([]model.Stock{ok, broken}, nil)
	mocks.cseClient.EXPECT().GetFundamentals(gomock.Any(), "OK.N0000").Return(&cse.CompanyFundamentals{
		MarketPrice: dec("10"),
		NAV:         dec("12"),
	}, nil)
	mocks.cseClient.EXPECT().GetFundamentals(gomock.Any(), "BROKEN.N0000").Return(nil, errors.New("status 404"))
	mocks.fundamentalsRepository.EXPECT().Upsert(nil, gomock.Any()).DoAndReturn(returnUpserted)

	result, err := handler.CollectAllFundamentals(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, result.Collected, 1)
	require.Equal(t, ok.StockID, result.Collected[0].StockID)
	require.Equal(t, []string{"BROKEN.N0000"}, result.Failed)
}

func TestRecordFundamentals(t *testing.T) {
	date := time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC)

	t.Run("unknown symbol", func(t *testing.T) {
		handler, mocks := newDataCollectionHandler(t)

		mocks.stockRepository.EXPECT().GetBySymbol("NOPE.N0000").Return(nil, nil)

		_, err := handler.RecordFundamentals(context.Background(), RecordFundamentalsInput{Symbol: "NOPE.N0000"})
		require.ErrorIs(t, err, ErrStockNotFound)
	})

	t.Run("manual entry with margin", func(t *testing.T) {
		handler, mocks := newDataCollectionHandler(t)

		stock := model.Stock{StockID: uuid.New(), Symbol: "JKH.N0000", IsActive: true}
		mocks.stockRepository.EXPECT().GetBySymbol("JKH.N0000").Return(&stock, nil)
		mocks.fundamentalsRepository.EXPECT().Upsert(nil, gomock.Any()).DoAndReturn(returnUpserted)

		price := dec("100")
		nav := dec("80")
		margin := dec("15")
		f, err := handler.RecordFundamentals(context.Background(), RecordFundamentalsInput{
			Symbol:          "JKH.N0000",
			Date:            date,
			MarketPrice:     &price,
			NAV:             &nav,
			EPS:             dec("10"),
			NetProfitMargin: &margin,
		})
		require.NoError(t, err)
		require.Equal(t, stock.StockID, f.StockID)
		require.NotNil(t, f.NetProfitMargin)
		require.True(t, margin.Equal(*f.NetProfitMargin))
		require.True(t, f.TotalEquity.IsZero())
	})
}
