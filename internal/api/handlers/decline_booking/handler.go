package decline_booking

import (
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocation    = "некорректный адрес страницы"
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

// Handle POST /api/v1/declines
// Устаревшая или повторная ссылка не ошибка: ответ 200 с declined=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeclineRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /declines - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	location, err := url.Parse(req.Location)
	if err != nil || req.Location == "" {
		h.logger.Warn("POST /declines - Invalid location %q", req.Location)
		handlers.RespondBadRequest(w, msgInvalidLocation)
		return
	}

	session := h.service.Session(middleware.GetSessionID(r.Context()))
	result, err := session.Reconcile(r.Context(), location)
	if err != nil {
		h.logger.Error("POST /declines - Failed to reconcile: %v, request_id=%s", err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /declines - requested=%t, declined=%t", result.Requested, result.Declined)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
