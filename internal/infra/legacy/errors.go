package legacy

import "errors"

var (
	// ErrMissingColumn в заголовке нет обязательной колонки
	ErrMissingColumn = errors.New("legacy: missing required column")

	// ErrInvalidRow строка не разобрана
	ErrInvalidRow = errors.New("legacy: invalid row")

	// ErrRead ошибка чтения CSV
	ErrRead = errors.New("legacy: failed to read csv")
)
