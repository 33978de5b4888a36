package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

const (
	shortDateLayout = "Mon, Jan 2"
	longDateLayout  = "Monday, January 2, 2006"
	monthLayout     = "January 2006"
	weekdayLayout   = "Mon"
)

// FormatMinutes переводит смещение в минутах в HH:MM
func FormatMinutes(totalMinutes int) (types.TimeString, error) {
	return types.NewTimeStringFromMinutes(totalMinutes)
}

// FormatDateShort "Sat, Jun 1". Для некорректной даты возвращает исходную строку
func FormatDateShort(d types.DateString) string {
	return formatDate(d, shortDateLayout)
}

// FormatDateLong "Saturday, June 1, 2024". Для некорректной даты возвращает исходную строку
func FormatDateLong(d types.DateString) string {
	return formatDate(d, longDateLayout)
}

// FormatWeekday "Sat"
func FormatWeekday(d types.DateString) string {
	return formatDate(d, weekdayLayout)
}

// FormatMonthLabel "June 2024" по ключу месяца YYYY-MM
func FormatMonthLabel(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format(monthLayout)
}

// FormatSlotLabel подпись слота: "Sat, Jun 1 · 09:00" или только время в режиме одного дня
func FormatSlotLabel(d types.DateString, t types.TimeString) string {
	if d.IsZero() {
		return t.String()
	}
	return FormatDateShort(d) + " · " + t.String()
}

func formatDate(d types.DateString, layout string) string {
	// Дата без времени, поэтому UTC здесь не сдвигает день
	t, err := d.Time(time.UTC)
	if err != nil {
		return d.String()
	}
	return t.Format(layout)
}
