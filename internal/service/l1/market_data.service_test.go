package l1_service

import (
	"context"
	"cseinvest/pkg/cse"
	mock_cse "cseinvest/pkg/cse/mocks"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func commercialBank() []cse.StockMarketData {
	return []cse.StockMarketData{
		{
			CompanyName:    "COMMERCIAL BANK OF CEYLON PLC",
			Symbol:         "COMB.N0000",
			MarketPrice:    decimal.RequireFromString("105.255"),
			IssuedQuantity: 2000,
		},
		{
			CompanyName:    "COMMERCIAL BANK OF CEYLON PLC",
			Symbol:         "COMB.X0000",
			MarketPrice:    decimal.RequireFromString("88.1"),
			IssuedQuantity: 1000,
		},
	}
}

func TestCalculateNAV(t *testing.T) {
	t.Run("spreads equity over every share class", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cseClient := mock_cse.NewMockClient(ctrl)
		handler := NewMarketDataService(cseClient)

		stocks := commercialBank()
		cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "COMB.N0000").Return(&stocks[0], nil)
		cseClient.EXPECT().GetAllStocksByCompanyName(gomock.Any(), "COMMERCIAL BANK OF CEYLON PLC").Return(stocks, nil)

		// 100000 / 3000 = 33.333...
		nav, err := handler.CalculateNAV(context.Background(), "COMB.N0000", decimal.NewFromInt(100000))
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("33.33").Equal(nav), nav.String())
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cseClient := mock_cse.NewMockClient(ctrl)
		handler := NewMarketDataService(cseClient)

		stock := cse.StockMarketData{CompanyName: "X PLC", Symbol: "X.N0000", IssuedQuantity: 200}
		cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "X.N0000").Return(&stock, nil)
		cseClient.EXPECT().GetAllStocksByCompanyName(gomock.Any(), "X PLC").Return([]cse.StockMarketData{stock}, nil)

		// 1 / 200 = 0.005
		nav, err := handler.CalculateNAV(context.Background(), "X.N0000", decimal.NewFromInt(1))
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("0.01").Equal(nav), nav.String())
	})

	t.Run("unknown symbol gives zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cseClient := mock_cse.NewMockClient(ctrl)
		handler := NewMarketDataService(cseClient)

		cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "NOPE").Return(nil, nil)

		nav, err := handler.CalculateNAV(context.Background(), "NOPE", decimal.NewFromInt(100000))
		require.NoError(t, err)
		require.True(t, nav.IsZero())
	})

	t.Run("nothing issued gives zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cseClient := mock_cse.NewMockClient(ctrl)
		handler := NewMarketDataService(cseClient)

		stock := cse.StockMarketData{CompanyName: "X PLC", Symbol: "X.N0000"}
		cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "X.N0000").Return(&stock, nil)
		cseClient.EXPECT().GetAllStocksByCompanyName(gomock.Any(), "X PLC").Return([]cse.StockMarketData{stock}, nil)

		nav, err := handler.CalculateNAV(context.Background(), "X.N0000", decimal.NewFromInt(100000))
		require.NoError(t, err)
		require.True(t, nav.IsZero())
	})

	t.Run("feed failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cseClient := mock_cse.NewMockClient(ctrl)
		handler := NewMarketDataService(cseClient)

		cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "X.N0000").Return(nil, errors.New("timeout"))

		_, err := handler.CalculateNAV(context.Background(), "X.N0000", decimal.NewFromInt(100000))
		require.Error(t, err)
	})
}

func TestGetMarketPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	cseClient := mock_cse.NewMockClient(ctrl)
	handler := NewMarketDataService(cseClient)

	stocks := commercialBank()
	cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "COMB.N0000").Return(&stocks[0], nil)
	cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "NOPE").Return(nil, nil)

	price, err := handler.GetMarketPrice(context.Background(), "COMB.N0000")
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("105.26").Equal(price), price.String())

	price, err = handler.GetMarketPrice(context.Background(), "NOPE")
	require.NoError(t, err)
	require.True(t, price.IsZero())
}

func TestGetRelatedStockSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	cseClient := mock_cse.NewMockClient(ctrl)
	handler := NewMarketDataService(cseClient)

	stocks := commercialBank()
	cseClient.EXPECT().GetStockDataBySymbol(gomock.Any(), "COMB.X0000").Return(&stocks[1], nil)
	cseClient.EXPECT().GetAllStocksByCompanyName(gomock.Any(), "COMMERCIAL BANK OF CEYLON PLC").Return(stocks, nil)

	related, err := handler.GetRelatedStockSymbols(context.Background(), "COMB.X0000")
	require.NoError(t, err)

	require.Equal(
		t,
		"",
		cmp.Diff([]StockSymbolInfo{
			{Symbol: "COMB.N0000", IssuedQuantity: 2000, MarketPrice: decimal.RequireFromString("105.26")},
			{Symbol: "COMB.X0000", IssuedQuantity: 1000, MarketPrice: decimal.RequireFromString("88.1")},
		}, related, cmp.Comparer(func(a, b decimal.Decimal) bool {
			return a.Equal(b)
		})),
	)
}
