package surfacetypes

import "errors"

var (
	// ErrSurfaceTypeNotFound возвращается, когда тип покрытия не найден
	ErrSurfaceTypeNotFound = errors.New("surface type not found")

	// ErrDuplicateName возвращается, когда имя занято другим типом покрытия
	ErrDuplicateName = errors.New("surface type name must be unique")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid surface type data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("surfacetypes service: internal error")
)
