package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUserNotFound возвращается, когда пользователь с таким номером не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
