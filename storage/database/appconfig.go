package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/appconfig"
)

type appConfigRepository struct {
	db *sqlx.DB
}

var _ appconfig.Repository = (*appConfigRepository)(nil) // interface compliance check

func NewAppConfigRepository(db *sqlx.DB) *appConfigRepository {
	return &appConfigRepository{db: db}
}

func (repo appConfigRepository) GetValue(ctx context.Context, key string) (string, error) {
	var val string
	if err := repo.db.GetContext(ctx, &val, `SELECT value FROM app_config WHERE key = $1`, key); err != nil {
		if err == sql.ErrNoRows {
			return "", appconfig.ErrNotFound
		}
		return "", errors.Wrapf(core.ErrStorageUnavailable, "reading config %s: %s", key, err)
	}
	return val, nil
}

func (repo appConfigRepository) Upsert(ctx context.Context, key, value string) error {
	q := `
		INSERT INTO app_config (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := repo.db.ExecContext(ctx, q, key, value); err != nil {
		return errors.Wrapf(core.ErrStorageUnavailable, "upserting config %s: %s", key, err)
	}
	return nil
}

func (repo appConfigRepository) InsertIfAbsent(ctx context.Context, key, value string) error {
	q := `INSERT INTO app_config (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, q, key, value); err != nil {
		return errors.Wrapf(core.ErrStorageUnavailable, "seeding config %s: %s", key, err)
	}
	return nil
}
