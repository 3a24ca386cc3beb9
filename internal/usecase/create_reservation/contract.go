package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByCourtID(ctx context.Context, courtID int64) ([]*domain.Reservation, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// SurfaceTypeRepository интерфейс репозитория типов покрытий
// Нужен для получения тарифа при расчете цены
type SurfaceTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SurfaceType, error)
}

// UserDirectory интерфейс справочника пользователей
// ResolveOrCreate может неявно создать пользователя: заявка на бронирование
// может прийти от клиента, которого еще нет в справочнике
type UserDirectory interface {
	ResolveOrCreate(ctx context.Context, phoneNumber, name string) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
