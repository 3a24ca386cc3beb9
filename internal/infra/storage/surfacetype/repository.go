package surfacetype

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

// Repository репозиторий для работы с типами покрытий
// Все выборки отдают только неудаленные строки: мягкое удаление
// фильтруется на уровне репозитория, выше по стеку про него не знают
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов покрытий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип покрытия
func (r *Repository) Create(ctx context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("surface_types").
		Columns("name", "price_per_minute").
		Values(surfaceType.Name, surfaceType.PricePerMinute).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&surfaceType.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	surfaceType.CreatedAt = createdAt.Time
	surfaceType.UpdatedAt = updatedAt.Time

	return surfaceType, nil
}

// Update обновляет существующий тип покрытия
func (r *Repository) Update(ctx context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("surface_types").
		Set("name", surfaceType.Name).
		Set("price_per_minute", surfaceType.PricePerMinute).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": surfaceType.ID, "is_deleted": false}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSurfaceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	surfaceType.CreatedAt = createdAt.Time
	surfaceType.UpdatedAt = updatedAt.Time

	return surfaceType, nil
}

// GetByID получает тип покрытия по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SurfaceType, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByName получает тип покрытия по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.SurfaceType, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name}, "GetByName")
}

// GetAll получает все типы покрытий
func (r *Repository) GetAll(ctx context.Context) ([]*domain.SurfaceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price_per_minute",
		"created_at",
		"updated_at",
	).
		From("surface_types").
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

	surfaceTypes := make([]*domain.SurfaceType, 0)
	for rows.Next() {
		surfaceType, err := scanSurfaceType(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		surfaceTypes = append(surfaceTypes, surfaceType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return surfaceTypes, nil
}

// SoftDelete помечает тип покрытия удаленным
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("surface_types").
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
		return ErrSurfaceTypeNotFound
	}

	return nil
}

// SoftDeleteAll помечает все типы покрытий удаленными
func (r *Repository) SoftDeleteAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("surface_types").
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

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.SurfaceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where["is_deleted"] = false

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price_per_minute",
		"created_at",
		"updated_at",
	).
		From("surface_types").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var surfaceType domain.SurfaceType
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&surfaceType.ID,
		&surfaceType.Name,
		&surfaceType.PricePerMinute,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSurfaceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan surface type: %v", ErrScanRow, method, err)
	}

	surfaceType.CreatedAt = createdAt.Time
	surfaceType.UpdatedAt = updatedAt.Time

	return &surfaceType, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSurfaceType(row rowScanner) (*domain.SurfaceType, error) {
	var surfaceType domain.SurfaceType
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&surfaceType.ID,
		&surfaceType.Name,
		&surfaceType.PricePerMinute,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	surfaceType.CreatedAt = createdAt.Time
	surfaceType.UpdatedAt = updatedAt.Time

	return &surfaceType, nil
}
