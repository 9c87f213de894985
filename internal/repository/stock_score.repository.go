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

type StockScoreRepository interface {
	UpsertMany(tx *sql.Tx, in []*model.StockScore) error
	GetLatest() ([]StockScoreWithStock, error)
	GetLatestForStock(stockID uuid.UUID) (*model.StockScore, error)
}

type StockScoreWithStock struct {
	model.StockScore
	Stock model.Stock
}

type stockScoreRepositoryHandler struct {
	Db *sql.DB
}

func NewStockScoreRepository(db *sql.DB) StockScoreRepository {
	return stockScoreRepositoryHandler{Db: db}
}

func (h stockScoreRepositoryHandler) UpsertMany(tx *sql.Tx, in []*model.StockScore) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.LastUpdated = time.Now().UTC()
	}
	t := table.StockScore
	query := t.INSERT(t.MutableColumns).
		MODELS(in).
		ON_CONFLICT(t.StockID, t.ScoreDate).
		DO_UPDATE(
			postgres.SET(
				t.PeScore.SET(t.EXCLUDED.PeScore),
				t.RoeScore.SET(t.EXCLUDED.RoeScore),
				t.DividendYieldScore.SET(t.EXCLUDED.DividendYieldScore),
				t.DebtEquityScore.SET(t.EXCLUDED.DebtEquityScore),
				t.SupplementaryScore.SET(t.EXCLUDED.SupplementaryScore),
				t.SupplementaryMetric.SET(t.EXCLUDED.SupplementaryMetric),
				t.TotalScore.SET(t.EXCLUDED.TotalScore),
				t.Rank.SET(t.EXCLUDED.Rank),
				t.LastUpdated.SET(t.EXCLUDED.LastUpdated),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert stock scores: %w", err)
	}

	return nil
}

// GetLatest returns the scores of active stocks from the most recent
// scoring date, best first.
func (h stockScoreRepositoryHandler) GetLatest() ([]StockScoreWithStock, error) {
	latestDate, err := h.latestScoreDate()
	if err != nil {
		return nil, err
	}
	if latestDate == nil {
		return []StockScoreWithStock{}, nil
	}

	query := table.StockScore.
		INNER_JOIN(table.Stock, table.Stock.StockID.EQ(table.StockScore.StockID)).
		SELECT(table.StockScore.AllColumns, table.Stock.AllColumns).
		WHERE(postgres.AND(
			table.StockScore.ScoreDate.EQ(postgres.DateT(*latestDate)),
			table.Stock.IsActive.IS_TRUE(),
		)).
		ORDER_BY(table.StockScore.TotalScore.DESC(), table.StockScore.Rank.ASC())

	out := []StockScoreWithStock{}
	err = query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest stock scores: %w", err)
	}

	return out, nil
}

func (h stockScoreRepositoryHandler) latestScoreDate() (*time.Time, error) {
	query := table.StockScore.
		SELECT(table.StockScore.AllColumns).
		ORDER_BY(table.StockScore.ScoreDate.DESC()).
		LIMIT(1)

	out := model.StockScore{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest score date: %w", err)
	}

	return &out.ScoreDate, nil
}

// GetLatestForStock returns nil when the stock was never scored.
func (h stockScoreRepositoryHandler) GetLatestForStock(stockID uuid.UUID) (*model.StockScore, error) {
	query := table.StockScore.
		SELECT(table.StockScore.AllColumns).
		WHERE(table.StockScore.StockID.EQ(postgres.UUID(stockID))).
		ORDER_BY(table.StockScore.ScoreDate.DESC()).
		LIMIT(1)

	out := model.StockScore{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest score for stock %s: %w", stockID.String(), err)
	}

	return &out, nil
}
