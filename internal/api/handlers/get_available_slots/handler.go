package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateNotInWindow = "дата вне окна бронирования"
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

// Handle GET /api/v1/dates/{date}/slots
// Выбирает дату и возвращает ее сетку. Без {date} (GET /api/v1/slots) возвращает сетку текущего выбора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr, hasDate := mux.Vars(r)["date"]
	session := h.service.Session(middleware.GetSessionID(r.Context()))

	if !hasDate {
		view, err := session.View(r.Context())
		if err != nil {
			h.logger.Error("GET /slots - Failed to build view: %v, request_id=%s", err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, FromView(view))
		return
	}

	date, err := types.NewDateStringFromString(dateStr)
	if err != nil {
		h.logger.Warn("GET /dates/{date}/slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := session.SelectDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrDateNotInWindow):
			h.logger.Warn("GET /dates/{date}/slots - Date out of window: %s", date)
			handlers.RespondNotFound(w, msgDateNotInWindow)
		default:
			h.logger.Error("GET /dates/{date}/slots - Failed to select date %s: %v, request_id=%s", date, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dates/{date}/slots - date=%s, %d slots", date, len(view.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromView(view))
}
