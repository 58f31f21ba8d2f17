package domain

// Default configuration values
const (
	DefaultMinStayNights            = 3
	DefaultMaxStayNights            = 30
	DefaultMaxAdvanceDays           = 365 // 1 year
	DefaultSlotEventDurationMinutes = 120
	DefaultTimezone                 = "Europe/Bratislava"
)

// DefaultTimeslots слоты wellness-центра
var DefaultTimeslots = []string{
	"14:30-16:30",
	"17:00-19:00",
	"19:30-21:30",
}

// Business validation constants
const (
	MaxNameLength    = 200
	MaxPackageLength = 100
	MaxPhoneLength   = 50
	MaxNotesLength   = 1000

	MaxAdvanceDaysLimit = 3 * 365
	MaxStayNightsLimit  = 365
)

// Date format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD, хранение и query-параметры
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, формат сайта и писем
)
