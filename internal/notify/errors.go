package notify

import "errors"

var (
	// ErrSenderNotConfigured возвращается, если отправитель не настроен
	ErrSenderNotConfigured = errors.New("notify: email sender not configured")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("notify: email send failed")
)
