package users

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByPhone(ctx context.Context, phoneNumber string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
