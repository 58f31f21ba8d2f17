package create_stay_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_stay_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата заезда или выезда не распознана
	ErrInvalidDate = errors.New("create_stay_booking: invalid date")

	// ErrInvalidRange возвращается, когда выезд не позже заезда
	ErrInvalidRange = errors.New("create_stay_booking: end date must be after start date")

	// ErrStayTooShort возвращается, когда проживание короче минимального числа ночей
	ErrStayTooShort = errors.New("create_stay_booking: stay is too short")

	// ErrStayTooLong возвращается, когда проживание длиннее максимального числа ночей
	ErrStayTooLong = errors.New("create_stay_booking: stay is too long")

	// ErrDateInPast возвращается, когда день заезда уже прошел
	ErrDateInPast = errors.New("create_stay_booking: start date is in the past")

	// ErrTooFarAhead возвращается, когда заезд дальше окна бронирования
	ErrTooFarAhead = errors.New("create_stay_booking: start date is too far ahead")

	// ErrStayConflict возвращается при пересечении с существующими проживаниями.
	// Оборачивает *availability.StayConflictError со списком дней.
	ErrStayConflict = errors.New("create_stay_booking: stay overlaps existing booking")

	// ErrConcurrentBooking параллельная запись на те же даты, запрос можно повторить
	ErrConcurrentBooking = errors.New("create_stay_booking: concurrent booking, retry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_stay_booking: internal error")
)
