package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	GetByName(ctx context.Context, name string) (*domain.Court, error)
	GetAll(ctx context.Context) ([]*domain.Court, error)
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteAll(ctx context.Context) error
}

// SurfaceTypeRepository интерфейс репозитория типов покрытий
// Нужен для проверки ссылочной целостности при сохранении корта
type SurfaceTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SurfaceType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
