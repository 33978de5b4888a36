package notify

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
)

// Notification исходящее письмо о бронировании.
// Клиент передает его внешнему почтовому приложению через MailtoURI
type Notification struct {
	Recipient   string
	Subject     string
	Lines       []string
	DeclineLink string
}

// NewBookingNotification собирает письмо-заявку о бронировании со ссылкой отказа
func NewBookingNotification(recipient string, record domain.BookingRecord, declineLink string) *Notification {
	when := record.Time.String()
	subject := "Booking request for " + when
	lines := make([]string, 0, 8)

	if !record.Date.IsZero() {
		longDate := domain.FormatDateLong(record.Date)
		subject = "Booking request for " + longDate + " at " + when
		lines = append(lines, "Date: "+longDate)
	}

	lines = append(lines,
		"Time slot: "+when,
		"Name: "+record.Name,
		"Phone: +"+record.Phone,
	)
	if record.Notes != "" {
		lines = append(lines, "Other: "+record.Notes)
	}
	lines = append(lines,
		"",
		"Decline (free this slot):",
		declineLink,
	)

	return &Notification{
		Recipient:   recipient,
		Subject:     subject,
		Lines:       lines,
		DeclineLink: declineLink,
	}
}

// Body текст письма: строки через перевод строки
func (n *Notification) Body() string {
	return strings.Join(n.Lines, "\n")
}

// MailtoURI ссылка mailto: с subject и body в кодировке query string
func (n *Notification) MailtoURI() string {
	return "mailto:" + n.Recipient +
		"?subject=" + url.QueryEscape(n.Subject) +
		"&body=" + url.QueryEscape(n.Body())
}
