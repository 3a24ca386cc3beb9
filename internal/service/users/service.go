package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	userRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/user"
)

// Service сервис справочника пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Save сохраняет пользователя: вставка без ID, обновление с ID
// Номер телефона должен быть уникален среди неудаленных пользователей;
// совпадение с самим собой при обновлении нарушением не считается
func (s *Service) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := validateUser(user); err != nil {
		s.logger.Warn("Save: validation failed for user phone=%s: %v", user.PhoneNumber, err)
		return nil, err
	}

	if err := s.checkUniquePhoneNumber(ctx, user); err != nil {
		return nil, err
	}

	if user.ID == 0 {
		created, err := s.userRepo.Create(ctx, user)
		if err != nil {
			s.logger.Error("Save: failed to create user phone=%s: %v", user.PhoneNumber, err)
			return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Save: created user id=%d phone=%s", created.ID, created.PhoneNumber)
		return created, nil
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Save: user id=%d not found", user.ID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Save: failed to update user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: updated user id=%d phone=%s", updated.ID, updated.PhoneNumber)
	return updated, nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return user, nil
}

// GetByPhoneNumber получает пользователя по номеру телефона
func (s *Service) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error) {
	user, err := s.userRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByPhoneNumber: repository error for phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: GetByPhoneNumber - repository error: %v", ErrInternal, err)
	}
	return user, nil
}

// ResolveOrCreate возвращает пользователя по номеру телефона, создавая его при отсутствии
// Используется движком бронирования: заявка может прийти от нового клиента
// без отдельной регистрации. Имя существующего пользователя никогда не перезаписывается,
// сохраненная личность важнее имени из заявки
func (s *Service) ResolveOrCreate(ctx context.Context, phoneNumber, name string) (*domain.User, error) {
	existing, err := s.userRepo.GetByPhone(ctx, phoneNumber)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("ResolveOrCreate: repository error for phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: ResolveOrCreate - repository error: %v", ErrInternal, err)
	}

	user := &domain.User{
		PhoneNumber: phoneNumber,
		Name:        name,
	}
	if err := validateUser(user); err != nil {
		s.logger.Warn("ResolveOrCreate: validation failed for phone=%s: %v", phoneNumber, err)
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("ResolveOrCreate: failed to create user phone=%s: %v", phoneNumber, err)
		return nil, fmt.Errorf("%w: ResolveOrCreate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResolveOrCreate: created user id=%d phone=%s", created.ID, created.PhoneNumber)
	return created, nil
}

// GetAll получает всех пользователей
func (s *Service) GetAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return users, nil
}

// Delete помечает пользователя удаленным
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: user id=%d deleted", id)
	return nil
}

// DeleteAll помечает всех пользователей удаленными
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.userRepo.SoftDeleteAll(ctx); err != nil {
		s.logger.Error("DeleteAll: repository error: %v", err)
		return fmt.Errorf("%w: DeleteAll - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteAll: all users deleted")
	return nil
}

// checkUniquePhoneNumber проверяет уникальность номера среди неудаленных пользователей
func (s *Service) checkUniquePhoneNumber(ctx context.Context, user *domain.User) error {
	existing, err := s.userRepo.GetByPhone(ctx, user.PhoneNumber)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil
		}
		s.logger.Error("checkUniquePhoneNumber: repository error for phone=%s: %v", user.PhoneNumber, err)
		return fmt.Errorf("%w: checkUniquePhoneNumber - repository error: %v", ErrInternal, err)
	}

	if existing.ID != user.ID {
		s.logger.Warn("checkUniquePhoneNumber: phone=%s already taken by user id=%d", user.PhoneNumber, existing.ID)
		return fmt.Errorf("%w: %s", ErrDuplicatePhoneNumber, user.PhoneNumber)
	}

	return nil
}

func validateUser(user *domain.User) error {
	if !domain.ValidPhoneNumber(user.PhoneNumber) {
		return fmt.Errorf("%w: phone number must be in the format +XXXXXXXXXXXX", ErrInvalidInput)
	}
	if !domain.ValidName(user.Name) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			ErrInvalidInput, domain.MinNameLength, domain.MaxNameLength)
	}
	return nil
}
