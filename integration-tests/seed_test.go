package integration_tests

import (
	"bytes"
	"cseinvest/api"
	"cseinvest/internal"
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/db/models/postgres/public/table"
	"cseinvest/internal/domain"
	"cseinvest/internal/repository"
	l1_service "cseinvest/internal/service/l1"
	l2_service "cseinvest/internal/service/l2"
	l3_service "cseinvest/internal/service/l3"
	"cseinvest/internal/util"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seedStocks(tx *sql.Tx) (map[string]model.Stock, error) {
	models := []model.Stock{
		{Symbol: "COMB.N0000", CompanyName: "Commercial Bank of Ceylon PLC", Sector: util.StringPointer("Banking"), IsActive: true},
		{Symbol: "HNB.N0000", CompanyName: "Hatton National Bank PLC", Sector: util.StringPointer("Banking"), IsActive: true},
		{Symbol: "SAMP.N0000", CompanyName: "Sampath Bank PLC", Sector: util.StringPointer("Banking"), IsActive: true},
		{Symbol: "JKH.N0000", CompanyName: "John Keells Holdings PLC", Sector: util.StringPointer("Diversified"), IsActive: true},
		{Symbol: "LOLC.N0000", CompanyName: "LOLC Holdings PLC", Sector: util.StringPointer("Finance"), IsActive: false},
	}
	for i := range models {
		models[i].LastUpdated = time.Now().UTC()
	}

	inserted := []model.Stock{}
	err := table.Stock.
		INSERT(table.Stock.MutableColumns).
		MODELS(models).
		RETURNING(table.Stock.AllColumns).
		Query(tx, &inserted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert stocks: %w", err)
	}

	out := map[string]model.Stock{}
	for _, s := range inserted {
		out[s.Symbol] = s
	}
	return out, nil
}

func seedFundamentals(tx *sql.Tx, stocks map[string]model.Stock) error {
	f, err := os.Open("sample_fundamentals_2025.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	type Row struct {
		Symbol           string `csv:"symbol"`
		Date             string `csv:"date"`
		MarketPrice      string `csv:"market_price"`
		NAV              string `csv:"nav"`
		EPS              string `csv:"eps"`
		AnnualDividend   string `csv:"annual_dividend"`
		TotalLiabilities string `csv:"total_liabilities"`
		TotalEquity      string `csv:"total_equity"`
	}
	rows := []Row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return err
	}

	models := []model.FundamentalData{}
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return err
		}
		stock, ok := stocks[row.Symbol]
		if !ok {
			return fmt.Errorf("unknown symbol %s in sample fundamentals", row.Symbol)
		}
		models = append(models, model.FundamentalData{
			StockID:          stock.StockID,
			Date:             date,
			MarketPrice:      decimal.RequireFromString(row.MarketPrice),
			Nav:              decimal.RequireFromString(row.NAV),
			Eps:              decimal.RequireFromString(row.EPS),
			AnnualDividend:   decimal.RequireFromString(row.AnnualDividend),
			TotalLiabilities: decimal.RequireFromString(row.TotalLiabilities),
			TotalEquity:      decimal.RequireFromString(row.TotalEquity),
			LastUpdated:      time.Now().UTC(),
		})
	}

	_, err = table.FundamentalData.INSERT(table.FundamentalData.MutableColumns).MODELS(models).Exec(tx)
	return err
}

func cleanupTables(db *sql.DB) error {
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

// newTestApi wires the real services against the test database and the
// offline CSE feed.
func newTestApi(t *testing.T) (*api.ApiHandler, *sql.DB) {
	t.Helper()
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}
	require.NoError(t, cleanupTables(db))
	t.Cleanup(func() {
		require.NoError(t, cleanupTables(db))
		db.Close()
	})

	stockRepository := repository.NewStockRepository(db)
	fundamentalsRepository := repository.NewFundamentalsRepository(db)
	cseClient := NewMockCseClientForTests()

	settingsService := l1_service.NewSettingsService(
		repository.NewAppSettingRepository(db),
		decimal.NewFromInt(domain.DefaultMonthlyInvestmentAmount),
	)
	marketDataService := l1_service.NewMarketDataService(cseClient)
	recommendationService := l2_service.NewRecommendationService(
		stockRepository,
		fundamentalsRepository,
		repository.NewStockScoreRepository(db),
		repository.NewInvestmentRecommendationRepository(db),
		settingsService,
		internal.NewStockScorer(domain.SupplementaryMetric_NavPrice),
		domain.DefaultAllocationConfig(),
	)

	return &api.ApiHandler{
		Db:                     db,
		StockRepository:        stockRepository,
		FundamentalsRepository: fundamentalsRepository,
		SettingsService:        settingsService,
		MarketDataService:      marketDataService,
		DataCollectionService: l2_service.NewDataCollectionService(
			cseClient,
			stockRepository,
			fundamentalsRepository,
			marketDataService,
		),
		RecommendationService: recommendationService,
		DashboardService:      l3_service.NewDashboardService(recommendationService, settingsService),
	}, db
}

func hitEndpoint(baseUrl string, route string, method string, payload interface{}, target interface{}) error {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequest(method, baseUrl+"/"+route, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed with status %d and response body: %s", resp.StatusCode, string(responseBody))
	}

	if target == nil {
		return nil
	}
	return json.Unmarshal(responseBody, target)
}
