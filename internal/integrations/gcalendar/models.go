package gcalendar

import "time"

// Config параметры интеграции с календарем
type Config struct {
	CalendarID        string
	CredentialsFile   string         // JSON ключ сервисного аккаунта
	Location          *time.Location // часовой пояс событий
	SlotEventDuration time.Duration  // длительность события для wellness-слота
}
