package l2_service

import (
	"context"
	"cseinvest/internal"
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/domain"
	"cseinvest/internal/logger"
	"cseinvest/internal/repository"
	l1_service "cseinvest/internal/service/l1"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RecommendationService interface {
	ComputeScores(ctx context.Context, date time.Time) ([]domain.ScoreRecord, error)
	GenerateRecommendations(ctx context.Context, in GenerateRecommendationsInput) ([]domain.AllocationRecommendation, error)
	GetLatestScores(ctx context.Context) ([]repository.StockScoreWithStock, error)
	GetLatestRecommendations(ctx context.Context) ([]repository.RecommendationWithStock, error)
}

type GenerateRecommendationsInput struct {
	Date time.Time
	// overrides the persisted monthly budget when set
	Budget *decimal.Decimal
}

type recommendationServiceHandler struct {
	StockRepository                    repository.StockRepository
	FundamentalsRepository             repository.FundamentalsRepository
	StockScoreRepository               repository.StockScoreRepository
	InvestmentRecommendationRepository repository.InvestmentRecommendationRepository
	SettingsService                    l1_service.SettingsService
	Scorer                             internal.StockScorer
	AllocationConfig                   domain.AllocationConfig
}

func NewRecommendationService(
	stockRepository repository.StockRepository,
	fundamentalsRepository repository.FundamentalsRepository,
	stockScoreRepository repository.StockScoreRepository,
	investmentRecommendationRepository repository.InvestmentRecommendationRepository,
	settingsService l1_service.SettingsService,
	scorer internal.StockScorer,
	allocationConfig domain.AllocationConfig,
) RecommendationService {
	return recommendationServiceHandler{
		StockRepository:                    stockRepository,
		FundamentalsRepository:             fundamentalsRepository,
		StockScoreRepository:               stockScoreRepository,
		InvestmentRecommendationRepository: investmentRecommendationRepository,
		SettingsService:                    settingsService,
		Scorer:                             scorer,
		AllocationConfig:                   allocationConfig,
	}
}

// ComputeScores scores every active stock from its latest fundamentals,
// ranks the results and stores them under date. Stocks without any
// fundamentals are skipped.
func (h recommendationServiceHandler) ComputeScores(ctx context.Context, date time.Time) ([]domain.ScoreRecord, error) {
	log := logger.FromContext(ctx)

	stocks, err := h.StockRepository.List(repository.StockListFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to compute scores: %w", err)
	}

	scores := []domain.ScoreRecord{}
	for _, stock := range stocks {
		fundamentals, err := h.FundamentalsRepository.GetLatest(stock.StockID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute scores: %w", err)
		}
		if fundamentals == nil {
			log.Debugf("skipping %s, no fundamentals", stock.Symbol)
			continue
		}

		record := h.Scorer.Score(repository.FundamentalsToDomain(*fundamentals))
		record.ScoreDate = date
		scores = append(scores, record)
	}

	ranked := internal.RankScores(scores)

	models := []*model.StockScore{}
	for _, s := range ranked {
		models = append(models, repository.StockScoreFromDomain(s))
	}
	err = h.StockScoreRepository.UpsertMany(nil, models)
	if err != nil {
		return nil, fmt.Errorf("failed to save scores: %w", err)
	}

	log.Infof("scored %d of %d active stocks for %s", len(ranked), len(stocks), date.Format(time.DateOnly))

	return ranked, nil
}

// GenerateRecommendations allocates the monthly budget over the latest
// stored scores and stores the resulting recommendations under in.Date.
func (h recommendationServiceHandler) GenerateRecommendations(ctx context.Context, in GenerateRecommendationsInput) ([]domain.AllocationRecommendation, error) {
	log := logger.FromContext(ctx)

	latest, err := h.StockScoreRepository.GetLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}
	if len(latest) == 0 {
		log.Warn("no scores available, nothing to recommend")
		return []domain.AllocationRecommendation{}, nil
	}

	budget := in.Budget
	if budget == nil {
		amount, err := h.SettingsService.GetMonthlyInvestmentAmount(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate recommendations: %w", err)
		}
		budget = &amount
	}

	candidates := []domain.ScoreCandidate{}
	for _, s := range latest {
		candidates = append(candidates, domain.ScoreCandidate{
			Score:    repository.StockScoreToDomain(s.StockScore),
			IsActive: s.Stock.IsActive,
		})
	}

	recommendations, err := internal.CalculateAllocations(internal.CalculateAllocationsInput{
		Candidates: candidates,
		Date:       in.Date,
		Budget:     *budget,
		Config:     h.AllocationConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate allocations: %w", err)
	}

	models := []*model.InvestmentRecommendation{}
	for _, r := range recommendations {
		if r.ClampedToRemaining {
			log.Debugf("allocation for %s was capped by the remaining budget", r.StockID.String())
		}
		models = append(models, repository.RecommendationFromDomain(r))
	}
	err = h.InvestmentRecommendationRepository.UpsertMany(nil, models)
	if err != nil {
		return nil, fmt.Errorf("failed to save recommendations: %w", err)
	}

	log.Infof(
		"allocated %s over %d stocks for %s",
		domain.SumRecommended(recommendations).String(),
		len(recommendations),
		in.Date.Format(time.DateOnly),
	)

	return recommendations, nil
}

func (h recommendationServiceHandler) GetLatestScores(ctx context.Context) ([]repository.StockScoreWithStock, error) {
	return h.StockScoreRepository.GetLatest()
}

func (h recommendationServiceHandler) GetLatestRecommendations(ctx context.Context) ([]repository.RecommendationWithStock, error) {
	return h.InvestmentRecommendationRepository.GetLatest()
}
