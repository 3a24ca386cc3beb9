package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicatePhoneNumber возвращается, когда номер занят другим пользователем
	ErrDuplicatePhoneNumber = errors.New("phone number must be unique")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid user data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users service: internal error")
)
