package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler"
	createBooking "github.com/m04kA/SMC-SlotScheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocation    = "некорректный адрес страницы"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNoActiveSlot       = "слот не выбран"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocation)
		return
	}

	session := h.service.Session(middleware.GetSessionID(r.Context()))
	result, err := session.Book(r.Context(), serviceReq)
	if err != nil {
		h.respondError(w, r, "POST /bookings", err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: key=%s", result.Key)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, session.Toast()))
}

// HandleSubmit POST /api/v1/selection/submit
// Бронирует слот, открытый через POST /api/v1/selection
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := req.ToForm()
	if err != nil {
		h.logger.Warn("POST /selection/submit - %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocation)
		return
	}

	session := h.service.Session(middleware.GetSessionID(r.Context()))
	result, err := session.Submit(r.Context(), form)
	if err != nil {
		h.respondError(w, r, "POST /selection/submit", err)
		return
	}

	h.logger.Info("POST /selection/submit - Booking created successfully: key=%s", result.Key)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, session.Toast()))
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, route string, err error) {
	switch {
	case errors.Is(err, createBooking.ErrMissingName):
		h.logger.Warn("%s - Missing name", route)
		handlers.RespondBadRequest(w, scheduler.MsgMissingName)

	case errors.Is(err, createBooking.ErrBadPhone):
		h.logger.Warn("%s - Bad phone: %v", route, err)
		handlers.RespondBadRequest(w, scheduler.MsgWrongPhone)

	case errors.Is(err, createBooking.ErrSlotTaken):
		h.logger.Warn("%s - Slot taken", route)
		handlers.RespondConflict(w, scheduler.MsgSlotReserved)

	case errors.Is(err, createBooking.ErrInvalidTimeSlot):
		h.logger.Warn("%s - Invalid time slot: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)

	case errors.Is(err, createBooking.ErrInvalidDate):
		h.logger.Warn("%s - Invalid date: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, scheduler.ErrNoActiveSlot):
		h.logger.Warn("%s - No active slot", route)
		handlers.RespondError(w, http.StatusConflict, msgNoActiveSlot)

	default:
		h.logger.Error("%s - Failed to create booking: %v, request_id=%s", route, err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
	}
}
