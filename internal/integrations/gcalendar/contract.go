package gcalendar

import (
	"context"

	"google.golang.org/api/calendar/v3"
)

// eventInserter вставка события в календарь, в тестах подменяется
type eventInserter interface {
	Insert(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
