// Package kv хранит два singleton-документа системы ("settings" и "closed")
// в таблице kv как сериализованный JSON. Каждое обновление заменяет документ
// целиком, поэтому записи атомарны.
package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/restburger/reservation-service/pkg/dbstats"
	"github.com/restburger/reservation-service/pkg/psqlbuilder"
)

// Document keys
const (
	KeySettings   = "settings"
	KeyClosedDays = "closed"
)

// Repository репозиторий singleton-документов
type Repository struct {
	db dbstats.DBExecutor
}

// NewRepository создает новый экземпляр kv-репозитория
func NewRepository(db dbstats.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сериализованный документ по ключу
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	executor := dbstats.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("doc").
		From("kv").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var doc []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan document: %v", ErrScanRow, err)
	}

	return doc, nil
}

// Set атомарно заменяет документ по ключу (upsert)
func (r *Repository) Set(ctx context.Context, key string, doc []byte) error {
	executor := dbstats.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("kv").
		Columns("key", "doc").
		Values(key, doc).
		Suffix("ON CONFLICT (key) DO UPDATE SET doc = excluded.doc").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
