package api

import (
	"cseinvest/internal/logger"
	"cseinvest/internal/repository"
	l1_service "cseinvest/internal/service/l1"
	l2_service "cseinvest/internal/service/l2"
	l3_service "cseinvest/internal/service/l3"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                     *sql.DB
	StockRepository        repository.StockRepository
	FundamentalsRepository repository.FundamentalsRepository
	SettingsService        l1_service.SettingsService
	MarketDataService      l1_service.MarketDataService
	DataCollectionService  l2_service.DataCollectionService
	RecommendationService  l2_service.RecommendationService
	DashboardService       l3_service.DashboardService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to cse invest"})
	})

	router.GET("/stocks", m.listStocks)
	router.POST("/stocks", m.addStock)
	router.PUT("/stocks/:stockID", m.updateStock)
	router.DELETE("/stocks/:stockID", m.deactivateStock)

	router.GET("/fundamentals/:symbol", m.getFundamentals)
	router.POST("/fundamentals", m.recordFundamentals)

	router.GET("/scores", m.getScores)
	router.POST("/scores", m.computeScores)

	router.GET("/recommendations", m.getRecommendations)
	router.POST("/recommendations", m.generateRecommendations)

	router.GET("/settings/monthlyInvestmentAmount", m.getMonthlyInvestmentAmount)
	router.PUT("/settings/monthlyInvestmentAmount", m.updateMonthlyInvestmentAmount)

	router.GET("/dashboard", m.getDashboard)

	router.GET("/market/companies", m.searchCompanies)
	router.GET("/market/related/:symbol", m.getRelatedSymbols)
	router.POST("/collect/stocks", m.collectStocks)
	router.POST("/collect/fundamentals", m.collectFundamentals)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, l1_service.ErrInvalidInvestmentAmount):
		return http.StatusBadRequest
	case errors.Is(err, l2_service.ErrStockNotFound), errors.Is(err, qrm.ErrNoRows):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Error(err)
	} else {
		log.Warn(err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware attaches a request scoped logger to the request
// context and logs each request once it completes.
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	start := time.Now().UTC()
	requestID := uuid.New()

	log := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

	c.Next()

	log.Infow(
		"request completed",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", c.ClientIP(),
	)
}
