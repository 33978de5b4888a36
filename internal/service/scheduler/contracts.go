package scheduler

import (
	"context"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler/models"
	"github.com/m04kA/SMC-SlotScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SlotScheduler/internal/usecase/decline_booking"
	"github.com/m04kA/SMC-SlotScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// Renderer внешняя поверхность отрисовки
type Renderer interface {
	Render(view *models.View)
}

// SlotGenerator окно дат и сетка слотов
type SlotGenerator interface {
	Calendar(ctx context.Context) *get_available_slots.CalendarResponse
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
	IsValidTime(t types.TimeString) bool
}

// Reconciler обработка ссылок отказа
type Reconciler interface {
	Execute(ctx context.Context, req *decline_booking.Request) (*decline_booking.Response, error)
}

// Submitter оформление бронирования
type Submitter interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// BookingStore интерфейс хранилища бронирований (только чтение занятости)
type BookingStore interface {
	Has(key domain.BookingKey) bool
	Mode() domain.Mode
}

// Toaster короткие уведомления пользователю
type Toaster interface {
	Show(message string)
	Current() string
	Close()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
