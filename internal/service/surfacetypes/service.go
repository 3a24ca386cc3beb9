package surfacetypes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	surfaceTypeRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/surfacetype"
)

// Service сервис каталога типов покрытий
type Service struct {
	surfaceTypeRepo SurfaceTypeRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса типов покрытий
func NewService(surfaceTypeRepo SurfaceTypeRepository, logger Logger) *Service {
	return &Service{
		surfaceTypeRepo: surfaceTypeRepo,
		logger:          logger,
	}
}

// Save сохраняет тип покрытия: вставка без ID, обновление с ID
// Имя должно быть уникально среди неудаленных типов покрытий;
// совпадение с самим собой при обновлении нарушением не считается
func (s *Service) Save(ctx context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error) {
	if err := validateSurfaceType(surfaceType); err != nil {
		s.logger.Warn("Save: validation failed for surface type name=%q: %v", surfaceType.Name, err)
		return nil, err
	}

	if err := s.checkUniqueName(ctx, surfaceType); err != nil {
		return nil, err
	}

	if surfaceType.ID == 0 {
		created, err := s.surfaceTypeRepo.Create(ctx, surfaceType)
		if err != nil {
			s.logger.Error("Save: failed to create surface type name=%q: %v", surfaceType.Name, err)
			return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Save: created surface type id=%d name=%q", created.ID, created.Name)
		return created, nil
	}

	updated, err := s.surfaceTypeRepo.Update(ctx, surfaceType)
	if err != nil {
		if errors.Is(err, surfaceTypeRepo.ErrSurfaceTypeNotFound) {
			s.logger.Warn("Save: surface type id=%d not found", surfaceType.ID)
			return nil, ErrSurfaceTypeNotFound
		}
		s.logger.Error("Save: failed to update surface type id=%d: %v", surfaceType.ID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: updated surface type id=%d name=%q", updated.ID, updated.Name)
	return updated, nil
}

// GetByID получает тип покрытия по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.SurfaceType, error) {
	surfaceType, err := s.surfaceTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, surfaceTypeRepo.ErrSurfaceTypeNotFound) {
			return nil, ErrSurfaceTypeNotFound
		}
		s.logger.Error("GetByID: repository error for surface type id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return surfaceType, nil
}

// GetAll получает все типы покрытий
func (s *Service) GetAll(ctx context.Context) ([]*domain.SurfaceType, error) {
	surfaceTypes, err := s.surfaceTypeRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return surfaceTypes, nil
}

// Delete помечает тип покрытия удаленным
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.surfaceTypeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, surfaceTypeRepo.ErrSurfaceTypeNotFound) {
			s.logger.Warn("Delete: surface type id=%d not found", id)
			return ErrSurfaceTypeNotFound
		}
		s.logger.Error("Delete: repository error for surface type id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: surface type id=%d deleted", id)
	return nil
}

// DeleteAll помечает все типы покрытий удаленными
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.surfaceTypeRepo.SoftDeleteAll(ctx); err != nil {
		s.logger.Error("DeleteAll: repository error: %v", err)
		return fmt.Errorf("%w: DeleteAll - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteAll: all surface types deleted")
	return nil
}

// checkUniqueName проверяет уникальность имени среди неудаленных типов покрытий
// Ограничение уникальности в БД остается последней линией защиты от гонки,
// эта проверка дает понятную ошибку без раскатки транзакции
func (s *Service) checkUniqueName(ctx context.Context, surfaceType *domain.SurfaceType) error {
	existing, err := s.surfaceTypeRepo.GetByName(ctx, surfaceType.Name)
	if err != nil {
		if errors.Is(err, surfaceTypeRepo.ErrSurfaceTypeNotFound) {
			return nil
		}
		s.logger.Error("checkUniqueName: repository error for name=%q: %v", surfaceType.Name, err)
		return fmt.Errorf("%w: checkUniqueName - repository error: %v", ErrInternal, err)
	}

	if existing.ID != surfaceType.ID {
		s.logger.Warn("checkUniqueName: name=%q already taken by surface type id=%d", surfaceType.Name, existing.ID)
		return fmt.Errorf("%w: %s", ErrDuplicateName, surfaceType.Name)
	}

	return nil
}

func validateSurfaceType(surfaceType *domain.SurfaceType) error {
	if !domain.ValidName(surfaceType.Name) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			ErrInvalidInput, domain.MinNameLength, domain.MaxNameLength)
	}
	if surfaceType.PricePerMinute <= 0 {
		return fmt.Errorf("%w: price per minute must be positive", ErrInvalidInput)
	}
	return nil
}
