package get_available_slots

import (
	"context"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// UseCase генератор слотов и окна дат с отметкой занятых слотов
type UseCase struct {
	store        BookingStore
	cfg          Config
	slots        []types.TimeString
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает use case, заранее вычисляя сетку слотов дня
func NewUseCase(store BookingStore, cfg Config, timeProvider TimeProvider, logger Logger) (*UseCase, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	slots, err := DailySlots(cfg.StartMinute, cfg.EndMinute, cfg.IntervalMinutes)
	if err != nil {
		return nil, err
	}

	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &UseCase{
		store:        store,
		cfg:          cfg,
		slots:        slots,
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// Slots возвращает копию сетки слотов дня
func (uc *UseCase) Slots() []types.TimeString {
	return slices.Clone(uc.slots)
}

// IsValidTime проверяет, что метка времени входит в сетку слотов
func (uc *UseCase) IsValidTime(t types.TimeString) bool {
	return slices.Contains(uc.slots, t)
}

// Today возвращает сегодняшнюю дату по локальному календарю
func (uc *UseCase) Today() types.DateString {
	return types.NewDateString(uc.timeProvider.Now())
}

// Window возвращает окно дат, построенное от текущего дня
func (uc *UseCase) Window() []domain.DateOption {
	return DateWindow(uc.cfg.MonthsForward, uc.timeProvider.Now())
}

// IsDateInWindow проверяет, что дата входит в текущее окно бронирования
func (uc *UseCase) IsDateInWindow(date types.DateString) bool {
	first, last := WindowBounds(uc.cfg.MonthsForward, uc.timeProvider.Now())
	return isDateInWindow(date, first, last)
}

// Calendar возвращает окно дат и группы месяцев
func (uc *UseCase) Calendar(_ context.Context) *CalendarResponse {
	now := uc.timeProvider.Now()
	dates := DateWindow(uc.cfg.MonthsForward, now)

	return &CalendarResponse{
		Today:  types.NewDateString(now),
		Dates:  dates,
		Months: MonthGroups(dates),
	}
}

// Execute возвращает сетку слотов дня с отметкой занятых
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	mode := uc.store.Mode()

	// 1. Валидация даты (в режиме одного дня дата не используется)
	date := req.Date
	if mode.IsDateAware() {
		first, last := WindowBounds(uc.cfg.MonthsForward, uc.timeProvider.Now())
		if err := validateRequest(req, first, last); err != nil {
			uc.logger.Warn("GetAvailableSlots: validation failed for date=%s: %v", req.Date, err)
			return nil, err
		}
	} else {
		date = ""
	}

	// 2. Отмечаем занятые слоты
	states := make([]domain.SlotState, 0, len(uc.slots))
	booked := 0
	for _, slot := range uc.slots {
		key, err := domain.NewBookingKey(mode, date, slot)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}

		isBooked := uc.store.Has(key)
		if isBooked {
			booked++
		}
		states = append(states, domain.SlotState{Time: slot, Booked: isBooked})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots, %d booked", date, len(states), booked)

	label := ""
	if !date.IsZero() {
		label = domain.FormatDateLong(date)
	}

	return &Response{
		Date:  date,
		Label: label,
		Slots: states,
	}, nil
}
