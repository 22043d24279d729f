package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/restburger/reservation-service/internal/domain"
	"github.com/restburger/reservation-service/pkg/dbstats"
	"github.com/restburger/reservation-service/pkg/psqlbuilder"
	"github.com/restburger/reservation-service/pkg/types"
)

var reservationColumns = []string{
	"id",
	"name",
	"phone",
	"date",
	"time",
	"end_time",
	"guests",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями столиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет новую бронь. Временные метки выставляет вызывающий.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Insert(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbstats.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(reservationColumns...).
		Values(
			res.ID,
			res.Name,
			res.Phone,
			res.Date,
			res.Time,
			res.EndTime,
			res.Guests,
			res.Status,
			res.Notes,
			res.CreatedAt,
			res.UpdatedAt,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронь по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbstats.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListWithFilter получает брони с фильтрацией по периоду и статусу.
// Каждый фильтр опционален и применяется независимо.
// Результат отсортирован по (date, time) по возрастанию.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbstats.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("date ASC, time ASC")

	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.ToDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update заменяет все изменяемые поля брони. Идентификатор не меняется.
func (r *Repository) Update(ctx context.Context, id string, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbstats.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("name", res.Name).
		Set("phone", res.Phone).
		Set("date", res.Date).
		Set("time", res.Time).
		Set("end_time", res.EndTime).
		Set("guests", res.Guests).
		Set("status", res.Status).
		Set("notes", res.Notes).
		Set("updated_at", res.UpdatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return nil, ErrReservationNotFound
	}

	res.ID = id
	return res, nil
}

// Delete физически удаляет бронь. Tombstone не создаётся.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbstats.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CountActiveAt подсчитывает неотменённые брони на точный слот (date, time),
// исключая excludeID, чтобы обновление брони не конфликтовало само с собой.
func (r *Repository) CountActiveAt(ctx context.Context, date time.Time, t types.TimeString, excludeID string) (int, error) {
	executor := dbstats.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"date": date, "time": t}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.NotEq{"id": excludeID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveAt - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в бронь
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var endTime *types.TimeString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Phone,
		&res.Date,
		&res.Time,
		&endTime,
		&res.Guests,
		&res.Status,
		&res.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.EndTime = endTime
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
