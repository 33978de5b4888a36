package get_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-SlotScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// CalendarResponse окно дат, сгруппированное по месяцам
type CalendarResponse struct {
	Today  types.DateString    `json:"today"`
	Dates  []domain.DateOption `json:"dates"`
	Months []domain.MonthGroup `json:"months"`
}

type Handler struct {
	useCase CalendarUseCase
	logger  Logger
}

func NewHandler(useCase CalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendar := h.useCase.Calendar(r.Context())

	h.logger.Info("GET /calendar - %d dates from %s", len(calendar.Dates), calendar.Today)
	handlers.RespondJSON(w, http.StatusOK, CalendarResponse{
		Today:  calendar.Today,
		Dates:  calendar.Dates,
		Months: calendar.Months,
	})
}
