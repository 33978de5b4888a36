package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// DailySlots генерирует метки HH:MM от startMinute до endMinute включительно с шагом interval.
// Результат зависит только от аргументов, но не от текущего времени
func DailySlots(startMinute, endMinute, intervalMinutes int) ([]types.TimeString, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidConfig, intervalMinutes)
	}
	if startMinute < 0 || endMinute >= 24*60 || startMinute > endMinute {
		return nil, fmt.Errorf("%w: bad day bounds %d..%d", ErrInvalidConfig, startMinute, endMinute)
	}

	slots := make([]types.TimeString, 0, (endMinute-startMinute)/intervalMinutes+1)
	for minutes := startMinute; minutes <= endMinute; minutes += intervalMinutes {
		label, err := domain.FormatMinutes(minutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		slots = append(slots, label)
	}

	return slots, nil
}

// DateWindow возвращает каждый календарный день от локальной полуночи today
// до today + monthsForward месяцев включительно.
// Дата берется из локального календаря today, а не из UTC
func DateWindow(monthsForward int, today time.Time) []domain.DateOption {
	start, end := windowBounds(monthsForward, today)

	options := make([]domain.DateOption, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		options = append(options, newDateOption(types.NewDateString(day)))
	}

	return options
}

// MonthGroups группирует дни по ключу месяца в порядке первого появления
func MonthGroups(dates []domain.DateOption) []domain.MonthGroup {
	groups := make([]domain.MonthGroup, 0)
	index := make(map[string]int)

	for _, option := range dates {
		i, ok := index[option.MonthKey]
		if !ok {
			i = len(groups)
			index[option.MonthKey] = i
			groups = append(groups, domain.MonthGroup{
				Key:   option.MonthKey,
				Label: domain.FormatMonthLabel(option.MonthKey),
				Dates: make([]domain.DateOption, 0),
			})
		}
		groups[i].Dates = append(groups[i].Dates, option)
	}

	return groups
}

func newDateOption(date types.DateString) domain.DateOption {
	return domain.DateOption{
		ISO:      date,
		MonthKey: date.MonthKey(),
		Short:    domain.FormatDateShort(date),
		Long:     domain.FormatDateLong(date),
		Weekday:  domain.FormatWeekday(date),
	}
}

// WindowBounds возвращает первый и последний день окна бронирования
func WindowBounds(monthsForward int, today time.Time) (first, last types.DateString) {
	start, end := windowBounds(monthsForward, today)
	return types.NewDateString(start), types.NewDateString(end)
}

func windowBounds(monthsForward int, today time.Time) (start, end time.Time) {
	start = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return start, start.AddDate(0, monthsForward, 0)
}

// isDateInWindow проверяет, что дата лежит между first и last включительно.
// ISO-даты сравниваются лексикографически
func isDateInWindow(date, first, last types.DateString) bool {
	return date >= first && date <= last
}
