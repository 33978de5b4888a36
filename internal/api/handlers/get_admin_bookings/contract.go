package get_admin_bookings

import (
	"context"

	"github.com/m04kA/SMC-SlotScheduler/internal/service/admin/models"
)

type AdminService interface {
	List(ctx context.Context) *models.BookingListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
