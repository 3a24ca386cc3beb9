package surface_types

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

type SurfaceTypeService interface {
	Save(ctx context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error)
	GetByID(ctx context.Context, id int64) (*domain.SurfaceType, error)
	GetAll(ctx context.Context) ([]*domain.SurfaceType, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
