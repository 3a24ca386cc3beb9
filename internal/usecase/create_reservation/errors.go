package create_reservation

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrSurfaceTypeNotFound возвращается, когда тип покрытия корта удален из каталога
	ErrSurfaceTypeNotFound = errors.New("create_reservation: surface type not found")

	// ErrTimeConflict возвращается, когда запрошенный интервал пересекается
	// с существующим бронированием на том же корте
	ErrTimeConflict = errors.New("create_reservation: reservation time overlaps with an existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
