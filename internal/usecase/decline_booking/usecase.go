package decline_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
)

// UseCase сверка хранилища с инструкцией отказа из адреса страницы
type UseCase struct {
	store   BookingStore
	metrics MetricsCollector
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(store BookingStore, metrics MetricsCollector, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute применяет ссылку отказа. Повторное применение той же ссылки ничего не меняет,
// параметры отказа из адреса удаляются всегда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	mode := uc.store.Mode()
	resp := &Response{
		Location: domain.StripDeclineParams(mode, req.Location),
		Result:   ResultNone,
	}
	defer func() {
		if uc.metrics != nil {
			uc.metrics.ObserveDecline(resp.Result)
		}
	}()

	// 1. Ищем инструкцию отказа
	decline, ok := domain.ParseDeclineRequest(mode, req.Location.Query())
	if !ok {
		return resp, nil
	}
	resp.Requested = true

	// 2. Ключ тем же кодеком, что и при бронировании
	key, err := domain.NewBookingKey(mode, decline.Date, decline.Time)
	if err != nil {
		uc.logger.Warn("DeclineBooking: ignoring malformed decline link date=%q time=%q: %v", decline.Date, decline.Time, err)
		resp.Result = ResultInvalid
		return resp, nil
	}
	resp.Key = key

	// 3. Удаляем, если слот еще занят
	record, found := uc.store.Get(key)
	if !found || !uc.store.Remove(ctx, key) {
		uc.logger.Info("DeclineBooking: slot %s already free, nothing to decline", key)
		resp.Result = ResultStale
		return resp, nil
	}

	resp.Declined = true
	resp.Booking = record
	resp.Result = ResultDeclined
	resp.GridDirty = !mode.IsDateAware() || req.SelectedDate == record.Date
	resp.Message = fmt.Sprintf("%s was declined.", domain.FormatSlotLabel(record.Date, record.Time))

	uc.logger.Info("DeclineBooking: freed slot %s", key)

	return resp, nil
}
