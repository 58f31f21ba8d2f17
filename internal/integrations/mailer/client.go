package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
)

const emptyValue = "---"

// sendFunc отправка одного письма, подменяется в тестах
type sendFunc func(ctx context.Context, from string, to []string, msg []byte) error

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Client отправляет письма через SMTP с STARTTLS и PLAIN авторизацией
type Client struct {
	cfg  Config
	addr string
	auth smtp.Auth
	send sendFunc
	dial dialFunc
	now  func() time.Time
	log  Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(cfg Config, log Logger) *Client {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	c := &Client{
		cfg:  cfg,
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		dial: (&net.Dialer{}).DialContext,
		now:  time.Now,
		log:  log,
	}
	c.send = c.sendMail
	return c
}

// SendSlotConfirmation письмо администратору и подтверждение гостю
func (c *Client) SendSlotConfirmation(ctx context.Context, booking *domain.SlotBooking) error {
	data := slotData{
		Name:     booking.Name,
		Email:    booking.Email,
		Phone:    valueOrEmpty(booking.Phone),
		Date:     domain.FormatDisplayDate(booking.Date),
		Timeslot: booking.Timeslot,
		Package:  booking.Package,
		Notes:    valueOrEmpty(booking.Notes),
	}

	messages, err := c.render(booking.Email, data,
		subjectSlotAdmin, slotAdminTmpl,
		subjectSlotGuest, slotGuestTmpl,
	)
	if err != nil {
		return err
	}

	return c.deliver(ctx, messages)
}

// SendStayConfirmation письмо администратору и подтверждение гостю
func (c *Client) SendStayConfirmation(ctx context.Context, stay *domain.StayBooking) error {
	data := stayData{
		Name:  stay.Name,
		Email: stay.Email,
		Phone: stay.Phone,
		Start: domain.FormatDisplayDate(stay.StartDate),
		End:   domain.FormatDisplayDate(stay.EndDate),
		Notes: valueOrEmpty(stay.Notes),
	}

	messages, err := c.render(stay.Email, data,
		subjectStayAdmin, stayAdminTmpl,
		subjectStayGuest, stayGuestTmpl,
	)
	if err != nil {
		return err
	}

	return c.deliver(ctx, messages)
}

func (c *Client) render(
	guest string,
	data interface{},
	adminSubject string, adminTmpl *template.Template,
	guestSubject string, guestTmpl *template.Template,
) ([]message, error) {
	var adminBody, guestBody bytes.Buffer

	if err := adminTmpl.Execute(&adminBody, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, adminTmpl.Name(), err)
	}
	if err := guestTmpl.Execute(&guestBody, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, guestTmpl.Name(), err)
	}

	messages := []message{{to: guest, subject: guestSubject, body: guestBody.String()}}
	if c.cfg.AdminEmail != "" {
		messages = append(messages, message{to: c.cfg.AdminEmail, subject: adminSubject, body: adminBody.String()})
	}
	return messages, nil
}

// deliver отправляет все письма; ошибка одного не мешает отправке остальных
func (c *Client) deliver(ctx context.Context, messages []message) error {
	var errs []error

	for _, m := range messages {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%w: to=%s: %v", ErrSend, m.to, err))
			continue
		}

		if err := c.send(ctx, c.cfg.From, []string{m.to}, c.compose(m)); err != nil {
			c.log.Warn("Mailer: failed to send %q to %s: %v", m.subject, m.to, err)
			errs = append(errs, fmt.Errorf("%w: to=%s: %v", ErrSend, m.to, err))
			continue
		}

		c.log.Info("Mailer: sent %q to %s", m.subject, m.to)
	}

	return errors.Join(errs...)
}

// sendMail повторяет smtp.SendMail, но соединение ограничено контекстом:
// дедлайн ctx становится дедлайном сокета, отмена ctx прерывает чтение и запись
func (c *Client) sendMail(ctx context.Context, from string, to []string, msg []byte) error {
	conn, err := c.dial(ctx, "tcp", c.addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: c.cfg.Host}); err != nil {
			return err
		}
	}

	if c.auth != nil {
		if ok, _ := client.Extension("AUTH"); !ok {
			return errors.New("smtp: server doesn't support AUTH")
		}
		if err := client.Auth(c.auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// compose собирает RFC 5322 сообщение, тема в кодировке Q для диакритики
func (c *Client) compose(m message) []byte {
	var b strings.Builder

	b.WriteString("From: " + c.cfg.From + "\r\n")
	b.WriteString("To: " + m.to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", m.subject) + "\r\n")
	b.WriteString("Date: " + c.now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(m.body, "\n", "\r\n"))

	return []byte(b.String())
}

func valueOrEmpty(s *string) string {
	if s == nil || *s == "" {
		return emptyValue
	}
	return *s
}
