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
)

type AppSettingRepository interface {
	Get(key string) (*model.AppSetting, error)
	Upsert(tx *sql.Tx, key string, value string, description *string) (*model.AppSetting, error)
	List() ([]model.AppSetting, error)
}

type appSettingRepositoryHandler struct {
	Db *sql.DB
}

func NewAppSettingRepository(db *sql.DB) AppSettingRepository {
	return appSettingRepositoryHandler{Db: db}
}

// Get returns nil when the key was never set.
func (h appSettingRepositoryHandler) Get(key string) (*model.AppSetting, error) {
	query := table.AppSetting.
		SELECT(table.AppSetting.AllColumns).
		WHERE(table.AppSetting.Key.EQ(postgres.String(key)))

	out := model.AppSetting{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return &out, nil
}

// Upsert sets the value of a key. An existing description is only replaced
// when a new one is given.
func (h appSettingRepositoryHandler) Upsert(tx *sql.Tx, key string, value string, description *string) (*model.AppSetting, error) {
	m := model.AppSetting{
		Key:         key,
		Value:       value,
		Description: description,
		LastUpdated: time.Now().UTC(),
	}

	t := table.AppSetting
	onConflict := postgres.SET(
		t.Value.SET(t.EXCLUDED.Value),
		t.LastUpdated.SET(t.EXCLUDED.LastUpdated),
	)
	if description != nil {
		onConflict = postgres.SET(
			t.Value.SET(t.EXCLUDED.Value),
			t.Description.SET(t.EXCLUDED.Description),
			t.LastUpdated.SET(t.EXCLUDED.LastUpdated),
		)
	}

	query := t.INSERT(t.MutableColumns).
		MODEL(m).
		ON_CONFLICT(t.Key).
		DO_UPDATE(onConflict).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.AppSetting{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	return &out, nil
}

func (h appSettingRepositoryHandler) List() ([]model.AppSetting, error) {
	query := table.AppSetting.
		SELECT(table.AppSetting.AllColumns).
		ORDER_BY(table.AppSetting.Key.ASC())

	out := []model.AppSetting{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return out, nil
}
