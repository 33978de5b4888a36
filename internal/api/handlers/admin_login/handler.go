package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/admin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgWrongCredentials   = "Wrong credentials"
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

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Login(req.Username, req.Password); err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			handlers.RespondError(w, http.StatusUnauthorized, msgWrongCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Failed to login: %v, request_id=%s", err, middleware.GetRequestID(r.Context()))
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Authenticated: true})
}
