package domain

import "fmt"

// Mode режим работы планировщика
type Mode string

const (
	// ModeMultiDay бронирование на окно дат, ключ = дата + время
	ModeMultiDay Mode = "multi_day"
	// ModeSingleDay бронирование на один день, ключ = только время
	ModeSingleDay Mode = "single_day"
)

// IsDateAware возвращает true, если дата входит в ключ бронирования
func (m Mode) IsDateAware() bool {
	return m != ModeSingleDay
}

// Validate проверяет, что режим известен
func (m Mode) Validate() error {
	switch m {
	case ModeMultiDay, ModeSingleDay:
		return nil
	default:
		return fmt.Errorf("unknown scheduler mode %q", string(m))
	}
}
