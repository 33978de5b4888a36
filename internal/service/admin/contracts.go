package admin

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	List() []domain.BookingRecord
	Get(key domain.BookingKey) (*domain.BookingRecord, bool)
	Remove(ctx context.Context, key domain.BookingKey) bool
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
