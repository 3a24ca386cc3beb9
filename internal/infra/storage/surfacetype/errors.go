package surfacetype

import "errors"

var (
	// ErrSurfaceTypeNotFound возвращается, когда тип покрытия не найден
	ErrSurfaceTypeNotFound = errors.New("surfacetype.repository: surface type not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("surfacetype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("surfacetype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("surfacetype.repository: failed to scan row")
)
