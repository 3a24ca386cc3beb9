package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("update_reservation: court not found")

	// ErrSurfaceTypeNotFound возвращается, когда тип покрытия корта удален из каталога
	ErrSurfaceTypeNotFound = errors.New("update_reservation: surface type not found")

	// ErrTimeConflict возвращается, когда новый интервал пересекается
	// с другим бронированием на том же корте
	ErrTimeConflict = errors.New("update_reservation: reservation time overlaps with an existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
