package get_calendar

import (
	"context"

	getAvailableSlots "github.com/m04kA/SMC-SlotScheduler/internal/usecase/get_available_slots"
)

type CalendarUseCase interface {
	Calendar(ctx context.Context) *getAvailableSlots.CalendarResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
