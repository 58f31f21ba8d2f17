package create_stay_booking

import "time"

// Request модель запроса на бронирование проживания
type Request struct {
	Name  string
	Email string
	Phone string
	Start string // день заезда, "DD/MM/YYYY" или "YYYY-MM-DD"
	End   string // день выезда
	Notes *string
}

// Response модель ответа с созданным проживанием
type Response struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	StartDate time.Time
	EndDate   time.Time
	Nights    int
	Notes     *string
	CreatedAt time.Time

	Warnings []string
}
