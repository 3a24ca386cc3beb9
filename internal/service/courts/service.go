package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/court"
	surfaceTypeRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/surfacetype"
)

// Service сервис каталога кортов
type Service struct {
	courtRepo       CourtRepository
	surfaceTypeRepo SurfaceTypeRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, surfaceTypeRepo SurfaceTypeRepository, logger Logger) *Service {
	return &Service{
		courtRepo:       courtRepo,
		surfaceTypeRepo: surfaceTypeRepo,
		logger:          logger,
	}
}

// Save сохраняет корт: вставка без ID, обновление с ID
// Тип покрытия должен существовать и быть неудаленным,
// имя должно быть уникально среди неудаленных кортов
func (s *Service) Save(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	if err := validateCourt(court); err != nil {
		s.logger.Warn("Save: validation failed for court name=%q: %v", court.Name, err)
		return nil, err
	}

	if _, err := s.surfaceTypeRepo.GetByID(ctx, court.SurfaceTypeID); err != nil {
		if errors.Is(err, surfaceTypeRepo.ErrSurfaceTypeNotFound) {
			s.logger.Warn("Save: surface type id=%d not found for court name=%q", court.SurfaceTypeID, court.Name)
			return nil, fmt.Errorf("%w: id=%d", ErrUnknownSurfaceType, court.SurfaceTypeID)
		}
		s.logger.Error("Save: failed to resolve surface type id=%d: %v", court.SurfaceTypeID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUniqueName(ctx, court); err != nil {
		return nil, err
	}

	if court.ID == 0 {
		created, err := s.courtRepo.Create(ctx, court)
		if err != nil {
			s.logger.Error("Save: failed to create court name=%q: %v", court.Name, err)
			return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Save: created court id=%d name=%q", created.ID, created.Name)
		return created, nil
	}

	updated, err := s.courtRepo.Update(ctx, court)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Save: court id=%d not found", court.ID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Save: failed to update court id=%d: %v", court.ID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: updated court id=%d name=%q", updated.ID, updated.Name)
	return updated, nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return court, nil
}

// GetAll получает все корты
func (s *Service) GetAll(ctx context.Context) ([]*domain.Court, error) {
	courts, err := s.courtRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return courts, nil
}

// Delete помечает корт удаленным
// Бронирования корта остаются в истории: каскадного удаления нет
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.courtRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Delete: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: court id=%d deleted", id)
	return nil
}

// DeleteAll помечает все корты удаленными
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.courtRepo.SoftDeleteAll(ctx); err != nil {
		s.logger.Error("DeleteAll: repository error: %v", err)
		return fmt.Errorf("%w: DeleteAll - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteAll: all courts deleted")
	return nil
}

// checkUniqueName проверяет уникальность имени среди неудаленных кортов
func (s *Service) checkUniqueName(ctx context.Context, court *domain.Court) error {
	existing, err := s.courtRepo.GetByName(ctx, court.Name)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil
		}
		s.logger.Error("checkUniqueName: repository error for name=%q: %v", court.Name, err)
		return fmt.Errorf("%w: checkUniqueName - repository error: %v", ErrInternal, err)
	}

	if existing.ID != court.ID {
		s.logger.Warn("checkUniqueName: name=%q already taken by court id=%d", court.Name, existing.ID)
		return fmt.Errorf("%w: %s", ErrDuplicateName, court.Name)
	}

	return nil
}

func validateCourt(court *domain.Court) error {
	if !domain.ValidName(court.Name) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			ErrInvalidInput, domain.MinNameLength, domain.MaxNameLength)
	}
	if court.SurfaceTypeID <= 0 {
		return fmt.Errorf("%w: surface type id must be positive", ErrInvalidInput)
	}
	return nil
}
