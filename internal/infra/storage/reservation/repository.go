package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	"github.com/m04kA/SMC-CourtReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
// Все выборки отдают только неудаленные строки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте есть активная транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"court_id",
			"start_time",
			"end_time",
			"game_type",
			"price",
		).
		Values(
			reservation.UserID,
			reservation.CourtID,
			reservation.StartTime,
			reservation.EndTime,
			reservation.GameType,
			reservation.Price,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// Update обновляет существующее бронирование
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("user_id", reservation.UserID).
		Set("court_id", reservation.CourtID).
		Set("start_time", reservation.StartTime).
		Set("end_time", reservation.EndTime).
		Set("game_type", reservation.GameType).
		Set("price", reservation.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID, "is_deleted": false}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.CourtID,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.GameType,
		&reservation.Price,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// GetAll получает все бронирования
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "GetAll")
}

// GetByCourtID получает все бронирования корта, отсортированные по времени начала
// Выборка идет по индексу (court_id, start_time), а не полным сканом таблицы.
// Внутри транзакции добавляется FOR UPDATE: строки корта блокируются на время
// проверки пересечений при создании бронирования
func (r *Repository) GetByCourtID(ctx context.Context, courtID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		Where(squirrel.Eq{"court_id": courtID, "is_deleted": false}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "GetByCourtID")
}

// GetByUserID получает все бронирования пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"user_id": userID, "is_deleted": false}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "GetByUserID")
}

// GetUpcomingByUserID получает бронирования пользователя, которые еще не закончились
// на момент now (end_time строго позже now)
func (r *Repository) GetUpcomingByUserID(ctx context.Context, userID int64, now time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"user_id": userID, "is_deleted": false}).
		Where(squirrel.Gt{"end_time": now}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcomingByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcomingByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "GetUpcomingByUserID")
}

// SoftDelete помечает бронирование удаленным
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// SoftDeleteAll помечает все бронирования удаленными
func (r *Repository) SoftDeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("is_deleted", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"is_deleted": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDeleteAll - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SoftDeleteAll - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"court_id",
		"start_time",
		"end_time",
		"game_type",
		"price",
		"created_at",
		"updated_at",
	).From("reservations")
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows, method string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.CourtID,
			&reservation.StartTime,
			&reservation.EndTime,
			&reservation.GameType,
			&reservation.Price,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return reservations, nil
}
