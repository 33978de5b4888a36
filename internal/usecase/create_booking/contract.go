package create_booking

import (
	"context"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/notify"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Has(key domain.BookingKey) bool
	Put(ctx context.Context, key domain.BookingKey, record domain.BookingRecord) error
	Mode() domain.Mode
}

// SlotDomain сетка допустимых слотов и окно дат
type SlotDomain interface {
	IsValidTime(t types.TimeString) bool
	IsDateInWindow(date types.DateString) bool
}

// EmailSender серверная отправка письма (опционально)
type EmailSender interface {
	Send(ctx context.Context, n *notify.Notification) error
}

// MetricsCollector метрики бронирований
type MetricsCollector interface {
	ObserveBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
