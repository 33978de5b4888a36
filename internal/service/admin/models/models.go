package models

import (
	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
)

// Credentials статические учетные данные администратора
type Credentials struct {
	Username string
	Password string
}

// BookingResponse бронирование в списке администратора
type BookingResponse struct {
	Key   string `json:"key"`
	Date  string `json:"date,omitempty"`
	Time  string `json:"time"`
	Label string `json:"label"` // "Sat, Jun 1 · 09:00"
	Name  string `json:"name"`
	Phone string `json:"phone"` // с ведущим "+"
	Notes string `json:"notes"`
}

// DayGroup бронирования одного дня
type DayGroup struct {
	Date     string            `json:"date,omitempty"`
	Label    string            `json:"label"`
	Bookings []BookingResponse `json:"bookings"`
}

// BookingListResponse список бронирований, сгруппированный относительно сегодняшнего дня
type BookingListResponse struct {
	Today  *DayGroup  `json:"today,omitempty"`
	Future []DayGroup `json:"future"`
	Past   []DayGroup `json:"past"`
	Total  int        `json:"total"`
}

// FromDomainBooking конвертирует domain.BookingRecord в BookingResponse
func FromDomainBooking(mode domain.Mode, record domain.BookingRecord) BookingResponse {
	key, _ := record.Key(mode)
	return BookingResponse{
		Key:   key.String(),
		Date:  record.Date.String(),
		Time:  record.Time.String(),
		Label: domain.FormatSlotLabel(record.Date, record.Time),
		Name:  record.Name,
		Phone: "+" + record.Phone,
		Notes: record.Notes,
	}
}
