package load_page

import (
	"net/http"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
)

type Handler struct {
	service SchedulerService
	logger  Logger
}

func NewHandler(service SchedulerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /
// Загрузка страницы: сначала применяется ссылка отказа из адреса. Если параметры отказа были,
// ответ 303 на очищенный адрес, чтобы обновление страницы не повторяло отказ
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := h.service.Session(middleware.GetSessionID(r.Context()))

	result, err := session.Reconcile(r.Context(), r.URL)
	if err != nil {
		h.logger.Error("GET / - Failed to reconcile: %v, request_id=%s", err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
		return
	}

	if result.Requested {
		h.logger.Info("GET / - Decline link processed (declined=%t), redirecting to %s", result.Declined, result.Location)
		http.Redirect(w, r, result.Location.String(), http.StatusSeeOther)
		return
	}

	view, err := session.View(r.Context())
	if err != nil {
		h.logger.Error("GET / - Failed to build view: %v, request_id=%s", err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
