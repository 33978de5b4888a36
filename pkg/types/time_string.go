package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	minutesInHour = 60
	minutesInDay  = 24 * minutesInHour
)

// ErrInvalidTimeFormat возвращается, если строка не соответствует формату HH:MM
var ErrInvalidTimeFormat = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM (24h)
type TimeString string

// NewTimeString создает TimeString из time.Time (часы и минуты в локации t)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит и валидирует строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из смещения в минутах от полуночи
func NewTimeStringFromMinutes(totalMinutes int) (TimeString, error) {
	if totalMinutes < 0 || totalMinutes >= minutesInDay {
		return "", fmt.Errorf("%w: minute offset %d out of range", ErrInvalidTimeFormat, totalMinutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", totalMinutes/minutesInHour, totalMinutes%minutesInHour)), nil
}

// Validate проверяет формат HH:MM: ровно 5 символов, двоеточие, часы 00-23, минуты 00-59
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidTimeFormat
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return ErrInvalidTimeFormat
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return ErrInvalidTimeFormat
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает смещение в минутах от полуночи
// Для невалидного значения возвращает -1
func (t TimeString) Minutes() int {
	if t.Validate() != nil {
		return -1
	}
	s := string(t)
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*minutesInHour + minutes
}

func (t TimeString) String() string {
	return string(t)
}

