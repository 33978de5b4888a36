package get_admin_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
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

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.List(r.Context())

	h.logger.Info("GET /admin/bookings - %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
