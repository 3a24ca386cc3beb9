package surfacetypes

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// SurfaceTypeRepository интерфейс репозитория типов покрытий
type SurfaceTypeRepository interface {
	Create(ctx context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error)
	Update(ctx context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error)
	GetByID(ctx context.Context, id int64) (*domain.SurfaceType, error)
	GetByName(ctx context.Context, name string) (*domain.SurfaceType, error)
	GetAll(ctx context.Context) ([]*domain.SurfaceType, error)
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
