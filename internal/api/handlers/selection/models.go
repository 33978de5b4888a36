package selection

import (
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler/models"
)

// SelectSlotRequest выбор слота выбранной даты
type SelectSlotRequest struct {
	Time string `json:"time"`
}

// MoveRequest сдвиг выбранной даты, -1 влево, +1 вправо
type MoveRequest struct {
	Delta int `json:"delta"`
}

// SelectSlotResponse открытый слот
type SelectSlotResponse struct {
	ActiveSlot *models.ActiveSlot `json:"activeSlot"`
}
