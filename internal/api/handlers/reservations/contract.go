package reservations

import (
	"context"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

type ReservationService interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
	GetByCourt(ctx context.Context, courtID int64) ([]*domain.Reservation, error)
	GetByUserPhone(ctx context.Context, phoneNumber string) ([]*domain.Reservation, error)
	GetUpcomingByUserPhone(ctx context.Context, phoneNumber string) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
