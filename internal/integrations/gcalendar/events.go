package gcalendar

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/pkg/types"
)

const noNotes = "Žiadne"

// BuildSlotEvent событие со временем: начало по метке слота в часовом поясе loc,
// длительность duration (а не конец метки).
func BuildSlotEvent(booking *domain.SlotBooking, loc *time.Location, duration time.Duration) (*calendar.Event, error) {
	slot, err := types.ParseTimeslot(booking.Timeslot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildEvent, err)
	}

	start := slot.StartOn(booking.Date, loc)
	end := start.Add(duration)

	return &calendar.Event{
		Summary: fmt.Sprintf("Rezervácia - %s (%s)", booking.Name, booking.Package),
		Description: fmt.Sprintf("Meno: %s\nEmail: %s\nBalíček: %s\nPoznámky: %s",
			booking.Name, booking.Email, booking.Package, notesOrDefault(booking.Notes)),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
	}, nil
}

// BuildStayEvent событие на целые дни. end.date в Google Calendar не включается,
// поэтому совпадает с днем выезда.
func BuildStayEvent(stay *domain.StayBooking) *calendar.Event {
	return &calendar.Event{
		Summary: fmt.Sprintf("Rezervácia pobytu - %s", stay.Name),
		Description: fmt.Sprintf("Meno: %s\nEmail: %s\nTelefón: %s\nPoznámky: %s",
			stay.Name, stay.Email, stay.Phone, notesOrDefault(stay.Notes)),
		Start: &calendar.EventDateTime{Date: stay.StartDate.Format(domain.DateFormat)},
		End:   &calendar.EventDateTime{Date: stay.EndDate.Format(domain.DateFormat)},
	}
}

func notesOrDefault(notes *string) string {
	if notes == nil || *notes == "" {
		return noNotes
	}
	return *notes
}
