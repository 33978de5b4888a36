package delete_admin_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/admin"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

const (
	msgInvalidSlot     = "некорректная дата или время слота"
	msgBookingNotFound = "бронирование не найдено"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/bookings/{date}/{time}
// В режиме одного дня: DELETE /api/v1/admin/bookings/{time}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := types.DateString(vars["date"])
	t := types.TimeString(vars["time"])

	removed, err := h.service.Remove(r.Context(), date, t)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/bookings - Invalid slot date=%q time=%q", date, t)
			handlers.RespondBadRequest(w, msgInvalidSlot)
		case errors.Is(err, admin.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings - Booking not found date=%q time=%q", date, t)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("DELETE /admin/bookings - Failed to remove booking: %v, request_id=%s", err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings - Booking removed: %s", removed.Key)
	handlers.RespondJSON(w, http.StatusOK, removed)
}
