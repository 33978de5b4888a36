package booking

import "context"

// SlotStorage постоянное хранилище именованного слота (см. infra/slotstorage)
type SlotStorage interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, value []byte) error
}

// MetricsCollector метрики хранилища
type MetricsCollector interface {
	ObserveStorageError(operation string)
	SetBookingsStored(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
