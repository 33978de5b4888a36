package models

import (
	"net/url"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// ActiveSlot слот, для которого открыта форма бронирования
type ActiveSlot struct {
	Date  types.DateString `json:"date,omitempty"`
	Time  types.TimeString `json:"time"`
	Label string           `json:"label"`
}

// View снимок состояния для отрисовки
type View struct {
	Mode          domain.Mode         `json:"mode"`
	Today         types.DateString    `json:"today"`
	SelectedDate  types.DateString    `json:"selectedDate,omitempty"`
	SelectedLabel string              `json:"selectedLabel,omitempty"`
	Dates         []domain.DateOption `json:"dates,omitempty"`
	Months        []domain.MonthGroup `json:"months,omitempty"`
	Slots         []domain.SlotState  `json:"slots"`
	ActiveSlot    *ActiveSlot         `json:"activeSlot,omitempty"`
	Toast         string              `json:"toast,omitempty"`
}

// Form данные формы бронирования
type Form struct {
	Name     string
	Phone    string
	Notes    string
	Location *url.URL
}

// BookRequest бронирование конкретного слота без открытой формы
type BookRequest struct {
	Date types.DateString
	Time types.TimeString
	Form
}

// ToCreateBookingRequest конвертирует запрос в create_booking.Request
func (r *BookRequest) ToCreateBookingRequest() *create_booking.Request {
	return &create_booking.Request{
		Date:     r.Date,
		Time:     r.Time,
		Name:     r.Name,
		Phone:    r.Phone,
		Notes:    r.Notes,
		Location: r.Location,
	}
}
