package domain

import "github.com/m04kA/SMC-SlotScheduler/pkg/types"

// DateOption день в окне бронирования (производные данные, не сохраняются)
type DateOption struct {
	ISO      types.DateString `json:"iso"`
	MonthKey string           `json:"monthKey"` // YYYY-MM
	Short    string           `json:"short"`    // "Sat, Jun 1"
	Long     string           `json:"long"`     // "Saturday, June 1, 2024"
	Weekday  string           `json:"weekday"`  // "Sat"
}

// MonthGroup дни окна, сгруппированные по месяцу
type MonthGroup struct {
	Key   string       `json:"key"`
	Label string       `json:"label"` // "June 2024"
	Dates []DateOption `json:"dates"`
}

// SlotState состояние слота в сетке выбранного дня
type SlotState struct {
	Time   types.TimeString `json:"time"`
	Booked bool             `json:"booked"`
}
