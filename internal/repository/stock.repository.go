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

type StockRepository interface {
	List(filter StockListFilter) ([]model.Stock, error)
	Get(stockID uuid.UUID) (*model.Stock, error)
	GetBySymbol(symbol string) (*model.Stock, error)
	Add(tx *sql.Tx, s model.Stock) (*model.Stock, error)
	Update(tx *sql.Tx, s model.Stock) (*model.Stock, error)
	Upsert(tx *sql.Tx, s model.Stock) (*model.Stock, error)
	Deactivate(tx *sql.Tx, stockID uuid.UUID) error
}

type StockListFilter struct {
	ActiveOnly bool
}

type stockRepositoryHandler struct {
	Db *sql.DB
}

func NewStockRepository(db *sql.DB) StockRepository {
	return stockRepositoryHandler{Db: db}
}

func (h stockRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h stockRepositoryHandler) List(filter StockListFilter) ([]model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		ORDER_BY(table.Stock.Symbol.ASC())
	if filter.ActiveOnly {
		query = query.WHERE(table.Stock.IsActive.IS_TRUE())
	}

	result := []model.Stock{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	return result, nil
}

func (h stockRepositoryHandler) Get(stockID uuid.UUID) (*model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		WHERE(table.Stock.StockID.EQ(postgres.UUID(stockID)))

	out := model.Stock{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock %s: %w", stockID.String(), err)
	}

	return &out, nil
}

// GetBySymbol returns nil when no stock has the symbol.
func (h stockRepositoryHandler) GetBySymbol(symbol string) (*model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		WHERE(table.Stock.Symbol.EQ(postgres.String(symbol)))

	out := model.Stock{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get stock with symbol %s: %w", symbol, err)
	}

	return &out, nil
}

func (h stockRepositoryHandler) Add(tx *sql.Tx, s model.Stock) (*model.Stock, error) {
	s.LastUpdated = time.Now().UTC()
	query := table.Stock.
		INSERT(table.Stock.MutableColumns).
		MODEL(s).
		RETURNING(table.Stock.AllColumns)

	out := model.Stock{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert stock %s: %w", s.Symbol, err)
	}

	return &out, nil
}

func (h stockRepositoryHandler) Update(tx *sql.Tx, s model.Stock) (*model.Stock, error) {
	if s.StockID == uuid.Nil {
		return nil, fmt.Errorf("failed to update stock - id not provided in inputted model")
	}
	s.LastUpdated = time.Now().UTC()
	query := table.Stock.
		UPDATE(table.Stock.MutableColumns).
		MODEL(s).
		WHERE(table.Stock.StockID.EQ(postgres.UUID(s.StockID))).
		RETURNING(table.Stock.AllColumns)

	out := model.Stock{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock %s: %w", s.StockID.String(), err)
	}

	return &out, nil
}

// Upsert inserts the stock or refreshes the name and sector of the stock
// with the same symbol. The active flag of an existing stock is kept.
func (h stockRepositoryHandler) Upsert(tx *sql.Tx, s model.Stock) (*model.Stock, error) {
	s.LastUpdated = time.Now().UTC()
	query := table.Stock.
		INSERT(table.Stock.MutableColumns).
		MODEL(s).
		ON_CONFLICT(table.Stock.Symbol).
		DO_UPDATE(
			postgres.SET(
				table.Stock.CompanyName.SET(table.Stock.EXCLUDED.CompanyName),
				table.Stock.Sector.SET(table.Stock.EXCLUDED.Sector),
				table.Stock.LastUpdated.SET(table.Stock.EXCLUDED.LastUpdated),
			),
		).
		RETURNING(table.Stock.AllColumns)

	out := model.Stock{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert stock %s: %w", s.Symbol, err)
	}

	return &out, nil
}

// Deactivate soft deletes a stock. Its history is kept.
func (h stockRepositoryHandler) Deactivate(tx *sql.Tx, stockID uuid.UUID) error {
	query := table.Stock.
		UPDATE(table.Stock.IsActive, table.Stock.LastUpdated).
		SET(postgres.Bool(false), postgres.TimestampzT(time.Now().UTC())).
		WHERE(table.Stock.StockID.EQ(postgres.UUID(stockID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to deactivate stock %s: %w", stockID.String(), err)
	}

	return nil
}
