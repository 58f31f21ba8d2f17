package mailer

// Config параметры SMTP
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string // адрес отправителя, по умолчанию Username
	AdminEmail string // куда уходит уведомление о новом бронировании
}

// message готовое к отправке письмо
type message struct {
	to      string
	subject string
	body    string
}

type slotData struct {
	Name     string
	Email    string
	Phone    string
	Date     string
	Timeslot string
	Package  string
	Notes    string
}

type stayData struct {
	Name  string
	Email string
	Phone string
	Start string
	End   string
	Notes string
}
