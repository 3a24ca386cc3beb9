package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/court"
	surfaceTypeRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/surfacetype"
	usersService "github.com/m04kA/SMC-CourtReservationService/internal/service/users"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	courtRepo       CourtRepository
	surfaceTypeRepo SurfaceTypeRepository
	userDirectory   UserDirectory
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	courtRepo CourtRepository,
	surfaceTypeRepo SurfaceTypeRepository,
	userDirectory UserDirectory,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		courtRepo:       courtRepo,
		surfaceTypeRepo: surfaceTypeRepo,
		userDirectory:   userDirectory,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка корта, разрешение пользователя, проверка пересечений и вставка
// выполняются в одной сериализуемой транзакции: два конкурентных бронирования
// одного корта не могут оба увидеть "нет конфликта" и оба вставить строку.
// Цена считается на момент создания и больше не пересчитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: phone=%s, court=%d, start=%s, end=%s, gameType=%s",
		req.UserPhone, req.CourtID,
		req.StartTime.Format(domain.TimeFormat), req.EndTime.Format(domain.TimeFormat), req.GameType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем существование корта
		court, err := uc.courtRepo.GetByID(txCtx, req.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				uc.logger.Warn("CreateReservation: court id=%d not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateReservation: failed to get court id=%d: %v", req.CourtID, err)
			return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}

		// 2.2. Получаем тип покрытия корта для расчета цены
		surfaceType, err := uc.surfaceTypeRepo.GetByID(txCtx, court.SurfaceTypeID)
		if err != nil {
			if errors.Is(err, surfaceTypeRepo.ErrSurfaceTypeNotFound) {
				uc.logger.Warn("CreateReservation: surface type id=%d not found for court id=%d",
					court.SurfaceTypeID, court.ID)
				return ErrSurfaceTypeNotFound
			}
			uc.logger.Error("CreateReservation: failed to get surface type id=%d: %v", court.SurfaceTypeID, err)
			return fmt.Errorf("%w: failed to get surface type: %v", ErrInternal, err)
		}

		// 2.3. Разрешаем пользователя по номеру телефона, при отсутствии создаем
		user, err := uc.userDirectory.ResolveOrCreate(txCtx, req.UserPhone, req.UserName)
		if err != nil {
			if errors.Is(err, usersService.ErrInvalidInput) {
				uc.logger.Warn("CreateReservation: invalid user data for phone=%s: %v", req.UserPhone, err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateReservation: failed to resolve user phone=%s: %v", req.UserPhone, err)
			return fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
		}

		// 2.4. Получаем бронирования корта с блокировкой (FOR UPDATE)
		// и проверяем пересечение интервалов
		existing, err := uc.reservationRepo.GetByCourtID(txCtx, court.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations for court id=%d: %v", court.ID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		if conflict := findConflict(existing, req.StartTime, req.EndTime); conflict != nil {
			uc.logger.Warn("CreateReservation: time conflict on court id=%d with reservation id=%d",
				court.ID, conflict.ID)
			return fmt.Errorf("%w: court id=%d", ErrTimeConflict, court.ID)
		}

		// 2.5. Считаем цену: тариф покрытия x множитель типа игры x целые минуты
		price := domain.CalculatePrice(surfaceType.PricePerMinute, req.GameType, req.StartTime, req.EndTime)

		// 2.6. Собираем полностью разрешенное бронирование, не трогая входной запрос
		reservation := &domain.Reservation{
			UserID:    user.ID,
			CourtID:   court.ID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			GameType:  req.GameType,
			Price:     price,
		}

		// 2.7. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, price=%.2f",
		result.ID, result.Price)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		CourtID:   result.CourtID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		GameType:  string(result.GameType),
		Price:     result.Price,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
