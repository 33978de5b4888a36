package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
)

// BookingStore интерфейс хранилища бронирований (только чтение занятости)
type BookingStore interface {
	Has(key domain.BookingKey) bool
	Mode() domain.Mode
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в заданной локации
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в локации провайдера (локальное, если не задана)
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
