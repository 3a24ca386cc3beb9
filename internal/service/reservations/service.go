package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/user"
)

// Service сервис выборок по бронированиям
// Создание бронирований живет в usecase/create_reservation
type Service struct {
	reservationRepo ReservationRepository
	userRepo        UserRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return reservation, nil
}

// GetAll получает все бронирования
func (s *Service) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	reservations, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return reservations, nil
}

// GetByCourt получает все бронирования корта
// Существование корта не проверяется: для неизвестного корта список просто пуст
func (s *Service) GetByCourt(ctx context.Context, courtID int64) ([]*domain.Reservation, error) {
	reservations, err := s.reservationRepo.GetByCourtID(ctx, courtID)
	if err != nil {
		s.logger.Error("GetByCourt: repository error for court id=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: GetByCourt - repository error: %v", ErrInternal, err)
	}
	return reservations, nil
}

// GetByUserPhone получает все бронирования пользователя по номеру телефона
func (s *Service) GetByUserPhone(ctx context.Context, phoneNumber string) ([]*domain.Reservation, error) {
	user, err := s.resolveUser(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("GetByUserPhone: repository error for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: GetByUserPhone - repository error: %v", ErrInternal, err)
	}
	return reservations, nil
}

// GetUpcomingByUserPhone получает бронирования пользователя, которые еще не закончились
func (s *Service) GetUpcomingByUserPhone(ctx context.Context, phoneNumber string) ([]*domain.Reservation, error) {
	user, err := s.resolveUser(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	reservations, err := s.reservationRepo.GetUpcomingByUserID(ctx, user.ID, now)
	if err != nil {
		s.logger.Error("GetUpcomingByUserPhone: repository error for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: GetUpcomingByUserPhone - repository error: %v", ErrInternal, err)
	}
	return reservations, nil
}

// Delete помечает бронирование удаленным
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reservationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

// DeleteAll помечает все бронирования удаленными
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.reservationRepo.SoftDeleteAll(ctx); err != nil {
		s.logger.Error("DeleteAll: repository error: %v", err)
		return fmt.Errorf("%w: DeleteAll - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteAll: all reservations deleted")
	return nil
}

func (s *Service) resolveUser(ctx context.Context, phoneNumber string) (*domain.User, error) {
	user, err := s.userRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("resolveUser: user with phone=%s not found", phoneNumber)
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, phoneNumber)
		}
		s.logger.Error("resolveUser: repository error for phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: resolveUser - repository error: %v", ErrInternal, err)
	}
	return user, nil
}
