package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/zemzen/booking-service/internal/domain"
)

// Client создает события в Google Calendar от имени сервисного аккаунта
type Client struct {
	cfg      Config
	inserter eventInserter
	log      Logger
}

// NewClient создает клиента по файлу ключа сервисного аккаунта
func NewClient(ctx context.Context, cfg Config, log Logger) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create service: %w", err)
	}

	return newClient(cfg, &apiInserter{events: svc.Events}, log), nil
}

func newClient(cfg Config, inserter eventInserter, log Logger) *Client {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SlotEventDuration <= 0 {
		cfg.SlotEventDuration = domain.DefaultSlotEventDurationMinutes * time.Minute
	}
	return &Client{cfg: cfg, inserter: inserter, log: log}
}

// AddSlotEvent событие для wellness-слота, возвращает ID события
func (c *Client) AddSlotEvent(ctx context.Context, booking *domain.SlotBooking) (string, error) {
	event, err := BuildSlotEvent(booking, c.cfg.Location, c.cfg.SlotEventDuration)
	if err != nil {
		return "", err
	}
	return c.insert(ctx, event)
}

// AddStayEvent событие на весь период проживания
func (c *Client) AddStayEvent(ctx context.Context, stay *domain.StayBooking) (string, error) {
	return c.insert(ctx, BuildStayEvent(stay))
}

func (c *Client) insert(ctx context.Context, event *calendar.Event) (string, error) {
	created, err := c.inserter.Insert(ctx, c.cfg.CalendarID, event)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInsert, event.Summary, err)
	}

	c.log.Info("GoogleCalendar: event created id=%s, link=%s", created.Id, created.HtmlLink)
	return created.Id, nil
}

// apiInserter адаптер над calendar.EventsService
type apiInserter struct {
	events *calendar.EventsService
}

func (a *apiInserter) Insert(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	return a.events.Insert(calendarID, event).Context(ctx).Do()
}
