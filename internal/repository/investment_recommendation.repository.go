package repository

import (
	"cseinvest/internal/db/models/postgres/public/model"
	"cseinvest/internal/db/models/postgres/public/table"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type InvestmentRecommendationRepository interface {
	UpsertMany(tx *sql.Tx, in []*model.InvestmentRecommendation) error
	GetLatest() ([]RecommendationWithStock, error)
	HasForStockOnDate(stockID uuid.UUID, date time.Time) (bool, error)
}

type RecommendationWithStock struct {
	model.InvestmentRecommendation
	Stock model.Stock
}

type investmentRecommendationRepositoryHandler struct {
	Db *sql.DB
}

func NewInvestmentRecommendationRepository(db *sql.DB) InvestmentRecommendationRepository {
	return investmentRecommendationRepositoryHandler{Db: db}
}

func (h investmentRecommendationRepositoryHandler) UpsertMany(tx *sql.Tx, in []*model.InvestmentRecommendation) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.LastUpdated = time.Now().UTC()
	}
	t := table.InvestmentRecommendation
	query := t.INSERT(t.MutableColumns).
		MODELS(in).
		ON_CONFLICT(t.StockID, t.RecommendationDate).
		DO_UPDATE(
			postgres.SET(
				t.RecommendedAmount.SET(t.EXCLUDED.RecommendedAmount),
				t.RecommendationReason.SET(t.EXCLUDED.RecommendationReason),
				t.LastUpdated.SET(t.EXCLUDED.LastUpdated),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert investment recommendations: %w", err)
	}

	return nil
}

// GetLatest returns the recommendations of the most recent date for stocks
// that are still active, largest amount first.
func (h investmentRecommendationRepositoryHandler) GetLatest() ([]RecommendationWithStock, error) {
	latest := model.InvestmentRecommendation{}
	err := table.InvestmentRecommendation.
		SELECT(table.InvestmentRecommendation.AllColumns).
		ORDER_BY(table.InvestmentRecommendation.RecommendationDate.DESC()).
		LIMIT(1).
		Query(h.Db, &latest)
	if errors.Is(err, qrm.ErrNoRows) {
		return []RecommendationWithStock{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest recommendation date: %w", err)
	}

	query := table.InvestmentRecommendation.
		INNER_JOIN(table.Stock, table.Stock.StockID.EQ(table.InvestmentRecommendation.StockID)).
		SELECT(table.InvestmentRecommendation.AllColumns, table.Stock.AllColumns).
		WHERE(postgres.AND(
			table.InvestmentRecommendation.RecommendationDate.EQ(postgres.DateT(latest.RecommendationDate)),
			table.Stock.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.InvestmentRecommendation.RecommendedAmount.DESC())

	out := []RecommendationWithStock{}
	err = query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest recommendations: %w", err)
	}

	return out, nil
}

func (h investmentRecommendationRepositoryHandler) HasForStockOnDate(stockID uuid.UUID, date time.Time) (bool, error) {
	query := table.InvestmentRecommendation.
		SELECT(table.InvestmentRecommendation.AllColumns).
		WHERE(postgres.AND(
			table.InvestmentRecommendation.StockID.EQ(postgres.UUID(stockID)),
			table.InvestmentRecommendation.RecommendationDate.EQ(postgres.DateT(date)),
		))

	out := []model.InvestmentRecommendation{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return false, fmt.Errorf("failed to check recommendation for stock %s: %w", stockID.String(), err)
	}

	return len(out) > 0, nil
}
