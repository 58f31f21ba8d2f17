package gcalendar

import "errors"

var (
	// ErrInsert возвращается, когда Google Calendar API не создал событие
	ErrInsert = errors.New("gcalendar: failed to insert event")

	// ErrBuildEvent возвращается, когда из бронирования нельзя построить событие
	ErrBuildEvent = errors.New("gcalendar: failed to build event")
)
