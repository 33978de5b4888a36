package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender отправка письма о бронировании на стороне сервера.
// Основной канал остаётся mailto: ссылкой; отправитель дублирует её, если настроен
type EmailSender interface {
	Send(ctx context.Context, n *Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SendGridConfig настройки SendGrid
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridSender отправляет письма через SendGrid API
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    Logger
}

// NewSendGridSender создает отправителя. Без API ключа возвращает nil
func NewSendGridSender(cfg SendGridConfig, logger Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "Slot Scheduler"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// Send отправляет письмо получателю уведомления
func (s *SendGridSender) Send(ctx context.Context, n *Notification) error {
	if s == nil || s.client == nil {
		return ErrSenderNotConfigured
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", n.Recipient)
	body := n.Body()
	message := mail.NewSingleEmail(from, n.Subject, to, body, "")

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("SendGrid: send failed to=%s: %v", n.Recipient, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode >= 400 {
		s.logger.Error("SendGrid: error status=%d to=%s body=%s", response.StatusCode, n.Recipient, response.Body)
		return fmt.Errorf("%w: status %d", ErrSendFailed, response.StatusCode)
	}

	s.logger.Info("SendGrid: email sent to=%s subject=%q status=%d", n.Recipient, n.Subject, response.StatusCode)
	return nil
}

// StubEmailSender ничего не отправляет, только логирует
type StubEmailSender struct {
	logger Logger
}

// NewStubEmailSender создает заглушку отправителя
func NewStubEmailSender(logger Logger) *StubEmailSender {
	return &StubEmailSender{logger: logger}
}

func (s *StubEmailSender) Send(_ context.Context, n *Notification) error {
	s.logger.Info("StubEmailSender: would send email to=%s subject=%q", n.Recipient, n.Subject)
	return nil
}
