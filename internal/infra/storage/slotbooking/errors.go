package slotbooking

import "errors"

var (
	// ErrSlotTaken возвращается при нарушении уникальности (booking_date, timeslot)
	ErrSlotTaken = errors.New("slotbooking.repository: slot already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotbooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slotbooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slotbooking.repository: failed to scan row")
)
