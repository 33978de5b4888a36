package domain

import (
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// BookingRecord подтвержденное бронирование слота
// Запись не изменяется после создания: только замена или удаление
type BookingRecord struct {
	Date  types.DateString `json:"date,omitempty"` // пусто в режиме одного дня
	Time  types.TimeString `json:"time"`
	Name  string           `json:"name"`
	Phone string           `json:"phone"` // код страны + цифры номера, без "+"
	Notes string           `json:"notes"`
}

// Key возвращает ключ, под которым запись должна храниться
func (b *BookingRecord) Key(mode Mode) (BookingKey, error) {
	return NewBookingKey(mode, b.Date, b.Time)
}

// HasSlot возвращает true, если у записи заполнены компоненты слота для режима
func (b *BookingRecord) HasSlot(mode Mode) bool {
	if b.Time.IsZero() {
		return false
	}
	return !mode.IsDateAware() || !b.Date.IsZero()
}

// Before задает порядок отображения: по дате, затем по времени
func (b *BookingRecord) Before(other *BookingRecord) bool {
	if b.Date != other.Date {
		return b.Date < other.Date
	}
	return b.Time < other.Time
}
