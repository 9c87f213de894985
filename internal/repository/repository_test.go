package repository

import (
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/db/models/postgres/public/table"
	"cseinvest/internal/util"
	"database/sql"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDb returns a clean test database, skipping the test when none is
// running.
func newTestDb(t *testing.T) *sql.DB {
	t.Helper()
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}

	require.NoError(t, cleanup(db))
	t.Cleanup(func() {
		require.NoError(t, cleanup(db))
		db.Close()
	})

	return db
}

func cleanup(db *sql.DB) error {
	if _, err := table.InvestmentRecommendation.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.StockScore.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.FundamentalData.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Stock.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.AppSetting.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func addStock(t *testing.T, db *sql.DB, symbol string) model.Stock {
	t.Helper()
	stock, err := NewStockRepository(db).Add(nil, model.Stock{
		Symbol:      symbol,
		CompanyName: symbol + " PLC",
		Sector:      util.StringPointer("Banking"),
		IsActive:    true,
	})
	require.NoError(t, err)
	return *stock
}

func TestStockRepository(t *testing.T) {
	db := newTestDb(t)
	handler := NewStockRepository(db)

	comb := addStock(t, db, "COMB.N0000")
	jkh := addStock(t, db, "JKH.N0000")

	t.Run("get by symbol", func(t *testing.T) {
		stock, err := handler.GetBySymbol("JKH.N0000")
		require.NoError(t, err)
		require.Equal(t, jkh.StockID, stock.StockID)

		stock, err = handler.GetBySymbol("NOPE.N0000")
		require.NoError(t, err)
		require.Nil(t, stock)
	})

	t.Run("upsert refreshes name and keeps id", func(t *testing.T) {
		stock, err := handler.Upsert(nil, model.Stock{
			Symbol:      "COMB.N0000",
			CompanyName: "Commercial Bank of Ceylon PLC",
			IsActive:    true,
		})
		require.NoError(t, err)
		require.Equal(t, comb.StockID, stock.StockID)
		require.Equal(t, "Commercial Bank of Ceylon PLC", stock.CompanyName)
	})

	t.Run("deactivate hides from active list", func(t *testing.T) {
		require.NoError(t, handler.Deactivate(nil, jkh.StockID))

		active, err := handler.List(StockListFilter{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, active, 1)
		require.Equal(t, comb.StockID, active[0].StockID)

		all, err := handler.List(StockListFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)

		stock, err := handler.Get(jkh.StockID)
		require.NoError(t, err)
		require.False(t, stock.IsActive)
	})

	t.Run("upsert does not reactivate", func(t *testing.T) {
		stock, err := handler.Upsert(nil, model.Stock{Symbol: "JKH.N0000", CompanyName: "JKH PLC", IsActive: true})
		require.NoError(t, err)
		require.False(t, stock.IsActive)
	})
}

func TestFundamentalsRepository(t *testing.T) {
	db := newTestDb(t)
	handler := NewFundamentalsRepository(db)
	stock := addStock(t, db, "COMB.N0000")

	latest, err := handler.GetLatest(stock.StockID)
	require.NoError(t, err)
	require.Nil(t, latest)

	for _, day := range []int{14, 15} {
		_, err := handler.Upsert(nil, model.FundamentalData{
			StockID:     stock.StockID,
			Date:        util.NewDate(2025, 2, day),
			MarketPrice: decimal.NewFromInt(100),
			Nav:         decimal.NewFromInt(80),
		})
		require.NoError(t, err)
	}

	// same day again overwrites
	_, err = handler.Upsert(nil, model.FundamentalData{
		StockID:         stock.StockID,
		Date:            util.NewDate(2025, 2, 15),
		MarketPrice:     decimal.NewFromInt(120),
		Nav:             decimal.NewFromInt(80),
		NetProfitMargin: util.DecimalPointer(decimal.NewFromInt(15)),
	})
	require.NoError(t, err)

	latest, err = handler.GetLatest(stock.StockID)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(120).Equal(latest.MarketPrice))
	require.True(t, decimal.NewFromInt(15).Equal(*latest.NetProfitMargin))

	all, err := handler.ListForStock(stock.StockID)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestScoreAndRecommendationRepositories(t *testing.T) {
	db := newTestDb(t)
	scoreRepository := NewStockScoreRepository(db)
	recommendationRepository := NewInvestmentRecommendationRepository(db)

	comb := addStock(t, db, "COMB.N0000")
	jkh := addStock(t, db, "JKH.N0000")
	gone := addStock(t, db, "GONE.N0000")
	require.NoError(t, NewStockRepository(db).Deactivate(nil, gone.StockID))

	old := util.NewDate(2025, 2, 1)
	latest := util.NewDate(2025, 3, 1)
	score := func(stock model.Stock, date time.Time, total int64, rank int32) *model.StockScore {
		return &model.StockScore{
			StockID:             stock.StockID,
			ScoreDate:           date,
			TotalScore:          decimal.NewFromInt(total),
			SupplementaryMetric: model.SupplementaryMetric_NavPrice,
			Rank:                rank,
		}
	}

	t.Run("latest scores", func(t *testing.T) {
		require.NoError(t, scoreRepository.UpsertMany(nil, []*model.StockScore{
			score(comb, old, 90, 1),
		}))
		require.NoError(t, scoreRepository.UpsertMany(nil, []*model.StockScore{
			score(comb, latest, 40, 2),
			score(jkh, latest, 70, 1),
			score(gone, latest, 99, 1),
		}))

		out, err := scoreRepository.GetLatest()
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, jkh.StockID, out[0].StockID)
		require.Equal(t, "JKH.N0000", out[0].Stock.Symbol)
		require.Equal(t, comb.StockID, out[1].StockID)

		forStock, err := scoreRepository.GetLatestForStock(comb.StockID)
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(40).Equal(forStock.TotalScore))
	})

	t.Run("latest recommendations", func(t *testing.T) {
		require.NoError(t, recommendationRepository.UpsertMany(nil, []*model.InvestmentRecommendation{
			{StockID: comb.StockID, RecommendationDate: latest, RecommendedAmount: decimal.NewFromInt(20000)},
			{StockID: jkh.StockID, RecommendationDate: latest, RecommendedAmount: decimal.NewFromInt(30000), RecommendationReason: util.StringPointer("Attractive P/E ratio.")},
		}))

		out, err := recommendationRepository.GetLatest()
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, jkh.StockID, out[0].StockID)
		require.True(t, decimal.NewFromInt(50000).Equal(SumAmounts(out)))

		has, err := recommendationRepository.HasForStockOnDate(comb.StockID, latest)
		require.NoError(t, err)
		require.True(t, has)

		has, err = recommendationRepository.HasForStockOnDate(comb.StockID, old)
		require.NoError(t, err)
		require.False(t, has)
	})
}

func TestAppSettingRepository(t *testing.T) {
	db := newTestDb(t)
	handler := NewAppSettingRepository(db)

	setting, err := handler.Get("MonthlyInvestmentAmount")
	require.NoError(t, err)
	require.Nil(t, setting)

	_, err = handler.Upsert(nil, "MonthlyInvestmentAmount", "50000", util.StringPointer("Monthly investment budget in LKR"))
	require.NoError(t, err)

	setting, err = handler.Upsert(nil, "MonthlyInvestmentAmount", "60000", nil)
	require.NoError(t, err)
	require.Equal(t, "60000", setting.Value)
	require.Equal(t, "Monthly investment budget in LKR", *setting.Description)

	all, err := handler.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
}
