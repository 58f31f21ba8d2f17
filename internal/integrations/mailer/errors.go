package mailer

import "errors"

var (
	// ErrSend возвращается, когда SMTP сервер не принял письмо
	ErrSend = errors.New("mailer: failed to send message")

	// ErrRender возвращается при ошибке шаблона письма
	ErrRender = errors.New("mailer: failed to render message")
)
