package create_booking

import (
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler"
)

type SchedulerService interface {
	Session(id string) *scheduler.Session
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
