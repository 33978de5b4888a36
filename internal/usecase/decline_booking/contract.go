package decline_booking

import (
	"context"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Get(key domain.BookingKey) (*domain.BookingRecord, bool)
	Remove(ctx context.Context, key domain.BookingKey) bool
	Mode() domain.Mode
}

// MetricsCollector метрики обработки ссылок отказа
type MetricsCollector interface {
	ObserveDecline(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
