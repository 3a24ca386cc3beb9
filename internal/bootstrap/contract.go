package bootstrap

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

type SurfaceTypeCatalog interface {
	Save(ctx context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error)
	GetAll(ctx context.Context) ([]*domain.SurfaceType, error)
}

type CourtCatalog interface {
	Save(ctx context.Context, court *domain.Court) (*domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
