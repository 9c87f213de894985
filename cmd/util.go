package cmd

import (
	"cseinvest/api"
	"cseinvest/internal"
	"cseinvest/internal/repository"
	l1_service "cseinvest/internal/service/l1"
	l2_service "cseinvest/internal/service/l2"
	l3_service "cseinvest/internal/service/l3"
	"cseinvest/internal/util"
	"cseinvest/pkg/cse"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultPort = 3009

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
	_ = zap.S().Sync()
}

// Port returns the configured api port.
func Port() int {
	secrets, err := util.LoadSecrets()
	if err != nil || secrets.Port == 0 {
		return defaultPort
	}
	return secrets.Port
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	metric, err := secrets.Investment.Metric()
	if err != nil {
		return nil, fmt.Errorf("failed to load investment config: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	stockRepository := repository.NewStockRepository(dbConn)
	fundamentalsRepository := repository.NewFundamentalsRepository(dbConn)
	stockScoreRepository := repository.NewStockScoreRepository(dbConn)
	recommendationRepository := repository.NewInvestmentRecommendationRepository(dbConn)
	appSettingRepository := repository.NewAppSettingRepository(dbConn)

	cseClient := cse.NewClient(secrets.Cse.BaseUrl)

	settingsService := l1_service.NewSettingsService(appSettingRepository, secrets.Investment.DefaultMonthlyAmount())
	marketDataService := l1_service.NewMarketDataService(cseClient)
	dataCollectionService := l2_service.NewDataCollectionService(
		cseClient,
		stockRepository,
		fundamentalsRepository,
		marketDataService,
	)
	recommendationService := l2_service.NewRecommendationService(
		stockRepository,
		fundamentalsRepository,
		stockScoreRepository,
		recommendationRepository,
		settingsService,
		internal.NewStockScorer(metric),
		secrets.Investment.AllocationConfig(),
	)
	dashboardService := l3_service.NewDashboardService(recommendationService, settingsService)

	apiHandler := &api.ApiHandler{
		Db:                     dbConn,
		StockRepository:        stockRepository,
		FundamentalsRepository: fundamentalsRepository,
		SettingsService:        settingsService,
		MarketDataService:      marketDataService,
		DataCollectionService:  dataCollectionService,
		RecommendationService:  recommendationService,
		DashboardService:       dashboardService,
	}

	return apiHandler, nil
}
