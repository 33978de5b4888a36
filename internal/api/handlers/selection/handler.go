package selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeSlot    = "некорректный временной слот"
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

// HandleSelect POST /api/v1/selection
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session := h.service.Session(middleware.GetSessionID(r.Context()))
	active, err := session.SelectSlot(r.Context(), types.TimeString(req.Time))
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrSlotReserved):
			h.logger.Warn("POST /selection - Slot %s already reserved", req.Time)
			handlers.RespondConflict(w, session.Toast())
		case errors.Is(err, scheduler.ErrInvalidTimeSlot):
			h.logger.Warn("POST /selection - Invalid time slot %q", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		default:
			h.logger.Error("POST /selection - Failed to select slot %q: %v, request_id=%s", req.Time, err, middleware.GetRequestID(r.Context()))
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selection - Slot selected: %s", active.Label)
	handlers.RespondJSON(w, http.StatusOK, SelectSlotResponse{ActiveSlot: active})
}

// HandleClose DELETE /api/v1/selection
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.service.Session(middleware.GetSessionID(r.Context())).CloseModal()
	w.WriteHeader(http.StatusNoContent)
}

// HandleMove POST /api/v1/selection/move
func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Session(middleware.GetSessionID(r.Context())).MoveSelection(r.Context(), req.Delta)
	if err != nil {
		h.logger.Error("POST /selection/move - Failed to move selection: %v, request_id=%s", err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
