package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// KeySeparator разделитель даты и времени в ключе.
// Не встречается ни в YYYY-MM-DD, ни в HH:MM
const KeySeparator = "|"

var (
	// ErrInvalidKeyDate возвращается при некорректной дате компонента ключа
	ErrInvalidKeyDate = errors.New("domain: invalid booking key date")

	// ErrInvalidKeyTime возвращается при некорректном времени компонента ключа
	ErrInvalidKeyTime = errors.New("domain: invalid booking key time")
)

// BookingKey каноничный идентификатор слота
type BookingKey string

// NewBookingKey строит ключ слота, валидируя формат компонентов.
// В режиме одного дня дата не участвует в ключе и игнорируется
func NewBookingKey(mode Mode, date types.DateString, t types.TimeString) (BookingKey, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeyTime, string(t))
	}

	if !mode.IsDateAware() {
		return BookingKey(t), nil
	}

	if err := date.Validate(); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeyDate, string(date))
	}

	return BookingKey(string(date) + KeySeparator + string(t)), nil
}

// ParseBookingKey разбирает строковый ключ из хранилища и проверяет его формат.
// Используется только при загрузке: данные для отображения берутся из самой записи
func ParseBookingKey(mode Mode, raw string) (BookingKey, error) {
	if !mode.IsDateAware() {
		return NewBookingKey(mode, "", types.TimeString(raw))
	}

	date, t, found := strings.Cut(raw, KeySeparator)
	if !found {
		return "", fmt.Errorf("%w: missing separator in %q", ErrInvalidKeyDate, raw)
	}
	return NewBookingKey(mode, types.DateString(date), types.TimeString(t))
}

func (k BookingKey) String() string {
	return string(k)
}
