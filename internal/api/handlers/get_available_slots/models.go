package get_available_slots

import (
	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler/models"
)

// SlotGridResponse сетка слотов выбранного дня
type SlotGridResponse struct {
	Date  string             `json:"date,omitempty"`
	Label string             `json:"label,omitempty"`
	Slots []domain.SlotState `json:"slots"`
}

// FromView конвертирует снимок состояния в HTTP ответ
func FromView(view *models.View) SlotGridResponse {
	return SlotGridResponse{
		Date:  view.SelectedDate.String(),
		Label: view.SelectedLabel,
		Slots: view.Slots,
	}
}
