package update_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if !domain.ValidPhoneNumber(req.UserPhone) {
		return fmt.Errorf("%w: phone number must be in the format +XXXXXXXXXXXX", ErrInvalidInput)
	}

	if !domain.ValidName(req.UserName) {
		return fmt.Errorf("%w: user name must be between %d and %d characters",
			ErrInvalidInput, domain.MinNameLength, domain.MaxNameLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if !req.GameType.Valid() {
		return fmt.Errorf("%w: gameType must be SINGLE or DOUBLE", ErrInvalidInput)
	}

	return nil
}

// findConflict ищет бронирование, чей интервал пересекается с запрошенным
// Само обновляемое бронирование из проверки исключается: строка не
// конфликтует сама с собой
func findConflict(reservations []*domain.Reservation, reservationID int64, start, end time.Time) *domain.Reservation {
	for _, reservation := range reservations {
		if reservation.ID == reservationID {
			continue
		}
		if reservation.Overlaps(start, end) {
			return reservation
		}
	}
	return nil
}
