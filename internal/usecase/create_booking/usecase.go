package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/notify"
)

// UseCase use case для оформления бронирования
type UseCase struct {
	store   BookingStore
	slots   SlotDomain
	sender  EmailSender
	metrics MetricsCollector
	cfg     Config
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. sender и metrics могут быть nil
func NewUseCase(
	store BookingStore,
	slots SlotDomain,
	sender EmailSender,
	metrics MetricsCollector,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:   store,
		slots:   slots,
		sender:  sender,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
	}
}

// Execute проверяет заявку, сохраняет бронирование и собирает письмо со ссылкой отказа.
// Любая ошибка валидации возвращается до изменения состояния
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(Outcome(err))
	}
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	mode := uc.store.Mode()
	date := req.Date
	if !mode.IsDateAware() {
		date = ""
	}

	uc.logger.Info("CreateBooking: date=%s, time=%s", date, req.Time)

	// 1. Слот должен входить в сетку и окно дат
	if err := validateSlot(date, req.Time, mode, uc.slots); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 2. Имя
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		uc.logger.Warn("CreateBooking: name validation failed: %v", err)
		return nil, err
	}

	// 3. Телефон
	if err := validatePhone(req.Phone, uc.cfg.PhoneDigits); err != nil {
		uc.logger.Warn("CreateBooking: phone validation failed: %v", err)
		return nil, err
	}
	phoneDigits := SanitizePhone(req.Phone, uc.cfg.PhoneDigits)

	notes := strings.TrimSpace(req.Notes)
	if err := validateNotes(notes); err != nil {
		uc.logger.Warn("CreateBooking: notes validation failed: %v", err)
		return nil, err
	}

	location := req.Location
	if location == nil {
		location = uc.cfg.DefaultLocation
	}
	if location == nil {
		uc.logger.Warn("CreateBooking: no page location to build decline link")
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	// 4. Занятость слота
	key, err := domain.NewBookingKey(mode, date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if uc.store.Has(key) {
		uc.logger.Warn("CreateBooking: slot %s already taken", key)
		return nil, ErrSlotTaken
	}

	// 5. Сохраняем бронирование
	record := domain.BookingRecord{
		Date:  date,
		Time:  req.Time,
		Name:  name,
		Phone: uc.cfg.CountryCode + phoneDigits,
		Notes: notes,
	}
	if err := uc.store.Put(ctx, key, record); err != nil {
		uc.logger.Error("CreateBooking: failed to store booking %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to store booking: %v", ErrInternal, err)
	}

	// 6. Письмо со ссылкой отказа на этот слот
	declineLink := domain.BuildDeclineLink(mode, location, record.Date, record.Time)
	notification := notify.NewBookingNotification(uc.cfg.Recipient, record, declineLink)

	if uc.sender != nil {
		// Бронирование уже сохранено: ошибка отправки не отменяет его
		if err := uc.sender.Send(ctx, notification); err != nil && !errors.Is(err, notify.ErrSenderNotConfigured) {
			uc.logger.Warn("CreateBooking: server-side email for %s failed: %v", key, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully booked %s", key)

	return &Response{
		Key:          key,
		Booking:      record,
		Notification: notification,
	}, nil
}
