package staybooking

import "errors"

var (
	// ErrSerialization конфликт сериализуемой транзакции (параллельная запись), можно повторить
	ErrSerialization = errors.New("staybooking.repository: serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staybooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staybooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staybooking.repository: failed to scan row")
)
