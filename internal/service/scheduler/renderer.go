package scheduler

import (
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler/models"
)

// LogRenderer поверхность отрисовки для серверного режима: пишет сводку снимка в лог
type LogRenderer struct {
	logger Logger
}

// NewLogRenderer создает LogRenderer
func NewLogRenderer(logger Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

// Render пишет в лог выбранную дату и занятость сетки
func (r *LogRenderer) Render(view *models.View) {
	booked := 0
	for _, slot := range view.Slots {
		if slot.Booked {
			booked++
		}
	}
	r.logger.Info("Render: date=%s, %d/%d slots booked", view.SelectedDate, booked, len(view.Slots))
}
