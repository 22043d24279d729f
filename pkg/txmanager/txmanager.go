// Package txmanager выполняет функции в serializable-транзакциях.
// Проверка доступности слота и запись брони должны видеть согласованное
// состояние, иначе два параллельных создания могут переполнить слот.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/restburger/reservation-service/pkg/dbstats"
)

// serializationFailure SQLSTATE 40001: postgres прервал одну из
// конкурирующих serializable-транзакций, её нужно повторить.
const serializationFailure = "40001"

const maxRetries = 3

// TransactionManager менеджер serializable-транзакций.
type TransactionManager struct {
	db dbstats.TxBeginner
}

// NewTransactionManager создает менеджер поверх TxBeginner
// (*dbstats.DB или dbstats.Adapt(*sql.DB)).
func NewTransactionManager(db dbstats.TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри serializable-транзакции.
// Executor транзакции кладётся в context; репозитории достают его через
// dbstats.GetExecutor. При serialization failure повторяет до maxRetries раз.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = m.runOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !isSerializationFailure(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("txmanager: transaction retries exhausted: %w", lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbstats.WithExecutor(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailure
	}
	return false
}
