// Package storage содержит создание схемы и первоначальное наполнение.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/restburger/reservation-service/internal/domain"
	"github.com/restburger/reservation-service/internal/infra/storage/kv"
	"github.com/restburger/reservation-service/pkg/dbstats"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	date DATE NOT NULL,
	time TEXT NOT NULL,
	end_time TEXT,
	guests INTEGER NOT NULL,
	status TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reservations_date_time ON reservations(date, time);
CREATE INDEX IF NOT EXISTS idx_reservations_status ON reservations(status);

CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	doc JSONB NOT NULL
);
`

// Bootstrap создает таблицы и сажает дефолтные singleton-документы,
// если их ещё нет. Повторный запуск ничего не перезаписывает.
func Bootstrap(ctx context.Context, db *sql.DB, kvRepo *kv.Repository) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("storage: create schema: %w", err)
	}

	if err := seedDocument(ctx, kvRepo, kv.KeySettings, domain.DefaultSettings()); err != nil {
		return err
	}
	if err := seedDocument(ctx, kvRepo, kv.KeyClosedDays, domain.DefaultClosedDays()); err != nil {
		return err
	}

	return nil
}

func seedDocument(ctx context.Context, kvRepo *kv.Repository, key string, value interface{}) error {
	_, err := kvRepo.Get(ctx, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kv.ErrKeyNotFound) {
		return fmt.Errorf("storage: check %s document: %w", key, err)
	}

	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: marshal %s seed: %w", key, err)
	}
	if err := kvRepo.Set(ctx, key, doc); err != nil {
		return fmt.Errorf("storage: seed %s document: %w", key, err)
	}

	return nil
}

// ensure интерфейсная совместимость с репозиториями, работающими поверх dbstats
var _ dbstats.DBExecutor = (*sql.DB)(nil)
