package inmem

import (
	"context"

	"github.com/dineshpandey3618-web/Rank1/core/appconfig"
)

type appConfigRepository struct {
	db *appConfigTable
}

var _ appconfig.Repository = (*appConfigRepository)(nil) // interface compliance check

func NewAppConfigRepository(db *DB) *appConfigRepository {
	return &appConfigRepository{db: db.appConfig}
}

func (repo *appConfigRepository) GetValue(_ context.Context, key string) (string, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if val, ok := repo.db.t[key]; ok {
		return val, nil
	}
	return "", appconfig.ErrNotFound
}

func (repo *appConfigRepository) Upsert(_ context.Context, key, value string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.t[key] = value
	return nil
}

func (repo *appConfigRepository) InsertIfAbsent(_ context.Context, key, value string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.t[key]; !ok {
		repo.db.t[key] = value
	}
	return nil
}
