package create_slot_booking

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	Name     string  // Имя гостя
	Email    string  // Email для подтверждения
	Phone    *string // Телефон (опционально)
	Date     string  // Дата "DD/MM/YYYY" или "YYYY-MM-DD"
	Timeslot string  // Метка слота, например "17:00-19:00"
	Package  string  // Выбранный балíček
	Notes    *string // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Date      time.Time
	Timeslot  string
	Package   string
	Notes     *string
	CreatedAt time.Time

	// Warnings не доставленные уведомления; бронирование при этом сохранено
	Warnings []string
}
