package delete_admin_booking

import (
	"context"

	"github.com/m04kA/SMC-SlotScheduler/internal/service/admin/models"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

type AdminService interface {
	Remove(ctx context.Context, date types.DateString, t types.TimeString) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
