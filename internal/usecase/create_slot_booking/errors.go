package create_slot_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_slot_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата не в формате DD/MM/YYYY или YYYY-MM-DD
	ErrInvalidDate = errors.New("create_slot_booking: invalid booking date")

	// ErrDateInPast возвращается, когда день бронирования уже прошел
	ErrDateInPast = errors.New("create_slot_booking: booking date is in the past")

	// ErrTooFarAhead возвращается, когда день дальше окна бронирования
	ErrTooFarAhead = errors.New("create_slot_booking: booking date is too far ahead")

	// ErrUnknownTimeslot возвращается, когда метка слота не входит в расписание
	ErrUnknownTimeslot = errors.New("create_slot_booking: unknown timeslot")

	// ErrSlotTaken возвращается, когда слот на эту дату уже занят
	ErrSlotTaken = errors.New("create_slot_booking: timeslot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_slot_booking: internal error")
)
