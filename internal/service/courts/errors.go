package courts

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrUnknownSurfaceType возвращается, когда корт ссылается на несуществующий тип покрытия
	ErrUnknownSurfaceType = errors.New("court references unknown surface type")

	// ErrDuplicateName возвращается, когда имя занято другим кортом
	ErrDuplicateName = errors.New("court name must be unique")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid court data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts service: internal error")
)
