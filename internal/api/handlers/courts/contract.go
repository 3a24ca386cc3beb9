package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

type CourtService interface {
	Save(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	GetAll(ctx context.Context) ([]*domain.Court, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
