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

type FundamentalsRepository interface {
	Upsert(tx *sql.Tx, f model.FundamentalData) (*model.FundamentalData, error)
	GetLatest(stockID uuid.UUID) (*model.FundamentalData, error)
	ListForStock(stockID uuid.UUID) ([]model.FundamentalData, error)
}

type fundamentalsRepositoryHandler struct {
	Db *sql.DB
}

func NewFundamentalsRepository(db *sql.DB) FundamentalsRepository {
	return fundamentalsRepositoryHandler{Db: db}
}

// Upsert stores the snapshot, overwriting the figures of an existing
// snapshot for the same stock and date.
func (h fundamentalsRepositoryHandler) Upsert(tx *sql.Tx, f model.FundamentalData) (*model.FundamentalData, error) {
	f.LastUpdated = time.Now().UTC()
	t := table.FundamentalData
	query := t.
		INSERT(t.MutableColumns).
		MODEL(f).
		ON_CONFLICT(t.StockID, t.Date).
		DO_UPDATE(
			postgres.SET(
				t.MarketPrice.SET(t.EXCLUDED.MarketPrice),
				t.Nav.SET(t.EXCLUDED.Nav),
				t.Eps.SET(t.EXCLUDED.Eps),
				t.AnnualDividend.SET(t.EXCLUDED.AnnualDividend),
				t.TotalLiabilities.SET(t.EXCLUDED.TotalLiabilities),
				t.TotalEquity.SET(t.EXCLUDED.TotalEquity),
				t.NetProfitMargin.SET(t.EXCLUDED.NetProfitMargin),
				t.LastUpdated.SET(t.EXCLUDED.LastUpdated),
			),
		).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.FundamentalData{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert fundamental data for stock %s: %w", f.StockID.String(), err)
	}

	return &out, nil
}

// GetLatest returns nil when the stock has no snapshot yet.
func (h fundamentalsRepositoryHandler) GetLatest(stockID uuid.UUID) (*model.FundamentalData, error) {
	query := table.FundamentalData.
		SELECT(table.FundamentalData.AllColumns).
		WHERE(table.FundamentalData.StockID.EQ(postgres.UUID(stockID))).
		ORDER_BY(table.FundamentalData.Date.DESC()).
		LIMIT(1)

	out := model.FundamentalData{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest fundamental data for stock %s: %w", stockID.String(), err)
	}

	return &out, nil
}

func (h fundamentalsRepositoryHandler) ListForStock(stockID uuid.UUID) ([]model.FundamentalData, error) {
	query := table.FundamentalData.
		SELECT(table.FundamentalData.AllColumns).
		WHERE(table.FundamentalData.StockID.EQ(postgres.UUID(stockID))).
		ORDER_BY(table.FundamentalData.Date.DESC())

	out := []model.FundamentalData{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list fundamental data for stock %s: %w", stockID.String(), err)
	}

	return out, nil
}
