package types

import (
	"errors"
	"time"
)

// DateLayout формат календарной даты ISO 8601
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat возвращается, если строка не соответствует формату YYYY-MM-DD
var ErrInvalidDateFormat = errors.New("invalid date string format")

// DateString календарная дата в формате YYYY-MM-DD
type DateString string

// NewDateString берет календарную дату t в её собственной локации.
// Перевод в UTC перед форматированием сдвигает "сегодня" у пользователей западнее UTC.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateLayout))
}

// NewDateStringFromString парсит и валидирует строку YYYY-MM-DD
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет, что строка является существующей датой в формате YYYY-MM-DD
func (d DateString) Validate() error {
	parsed, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return ErrInvalidDateFormat
	}
	if parsed.Format(DateLayout) != string(d) {
		return ErrInvalidDateFormat
	}
	return nil
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Time возвращает локальную полночь даты в loc
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return parsed, nil
}

// MonthKey возвращает ключ месяца YYYY-MM
func (d DateString) MonthKey() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

func (d DateString) String() string {
	return string(d)
}
