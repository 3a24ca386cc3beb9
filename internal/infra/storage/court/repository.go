package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	"github.com/m04kA/SMC-CourtReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с кортами
// Все выборки отдают только неудаленные строки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый корт
func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns("name", "surface_type_id").
		Values(court.Name, court.SurfaceTypeID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return court, nil
}

// Update обновляет существующий корт
func (r *Repository) Update(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("name", court.Name).
		Set("surface_type_id", court.SurfaceTypeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": court.ID, "is_deleted": false}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return court, nil
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByName получает корт по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Court, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, "GetByName")
}

// GetAll получает все корты
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"surface_type_id",
		"created_at",
		"updated_at",
	).
		From("courts").
		Where(squirrel.Eq{"is_deleted": false}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.SurfaceTypeID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		court.CreatedAt = createdAt.Time
		court.UpdatedAt = updatedAt.Time

		courts = append(courts, &court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// SoftDelete помечает корт удаленным
// Бронирования корта при этом не трогаются, каскадного удаления нет
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
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
		return ErrCourtNotFound
	}

	return nil
}

// SoftDeleteAll помечает все корты удаленными
func (r *Repository) SoftDeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
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

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where["is_deleted"] = false

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"surface_type_id",
		"created_at",
		"updated_at",
	).
		From("courts").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.Name,
		&court.SurfaceTypeID,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan court: %v", ErrScanRow, method, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}
