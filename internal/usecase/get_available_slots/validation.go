package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// validateConfig валидирует параметры окна дат (сетка проверяется в DailySlots)
func validateConfig(cfg Config) error {
	if cfg.MonthsForward < 0 || cfg.MonthsForward > domain.MaxMonthsForward {
		return fmt.Errorf("%w: monthsForward must be within 0..%d", ErrInvalidConfig, domain.MaxMonthsForward)
	}
	return nil
}

// validateRequest валидирует дату запроса для режима с датами
func validateRequest(req *Request, first, last types.DateString) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if !isDateInWindow(req.Date, first, last) {
		return ErrDateOutOfWindow
	}

	return nil
}
