package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/admin/models"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// Service сервис администратора: вход, список и ручное удаление бронирований
type Service struct {
	store        BookingStore
	credentials  models.Credentials
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса администратора
func NewService(
	store BookingStore,
	credentials models.Credentials,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		credentials:  credentials,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Login статическая проверка учетных данных. Пробелы по краям не учитываются
func (s *Service) Login(username, password string) error {
	if !s.CheckCredentials(strings.TrimSpace(username), strings.TrimSpace(password)) {
		s.logger.Warn("Login: wrong credentials for user=%q", username)
		return ErrInvalidCredentials
	}

	s.logger.Info("Login: admin %q authenticated", username)
	return nil
}

// CheckCredentials сравнивает учетные данные за постоянное время
func (s *Service) CheckCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credentials.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.credentials.Password)) == 1
	return userOK && passOK
}

// List возвращает бронирования по дням: сегодня, будущие и прошедшие.
// Записи без даты или времени в список не попадают
func (s *Service) List(_ context.Context) *models.BookingListResponse {
	mode := s.store.Mode()
	today := types.NewDateString(s.timeProvider.Now())

	resp := &models.BookingListResponse{
		Future: make([]models.DayGroup, 0),
		Past:   make([]models.DayGroup, 0),
	}

	// List уже отсортирован по дате и времени, поэтому группы идут по порядку
	for _, record := range s.store.List() {
		if !record.HasSlot(mode) {
			continue
		}
		item := models.FromDomainBooking(mode, record)
		resp.Total++

		switch {
		case !mode.IsDateAware() || record.Date == today:
			if resp.Today == nil {
				resp.Today = newDayGroup(mode, today)
			}
			resp.Today.Bookings = append(resp.Today.Bookings, item)
		case record.Date > today:
			resp.Future = appendToGroup(mode, resp.Future, record.Date, item)
		default:
			resp.Past = appendToGroup(mode, resp.Past, record.Date, item)
		}
	}

	s.logger.Info("List: %d bookings", resp.Total)
	return resp
}

// Remove удаляет бронирование слота вручную
func (s *Service) Remove(ctx context.Context, date types.DateString, t types.TimeString) (*models.BookingResponse, error) {
	mode := s.store.Mode()

	key, err := domain.NewBookingKey(mode, date, t)
	if err != nil {
		s.logger.Warn("Remove: invalid slot date=%q time=%q: %v", date, t, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	record, ok := s.store.Get(key)
	if !ok || !s.store.Remove(ctx, key) {
		s.logger.Warn("Remove: booking %s not found", key)
		return nil, ErrBookingNotFound
	}

	s.logger.Info("Remove: booking %s removed by admin", key)
	item := models.FromDomainBooking(mode, *record)
	return &item, nil
}

func newDayGroup(mode domain.Mode, date types.DateString) *models.DayGroup {
	if !mode.IsDateAware() {
		return &models.DayGroup{Label: "Today", Bookings: make([]models.BookingResponse, 0)}
	}
	return &models.DayGroup{
		Date:     date.String(),
		Label:    domain.FormatDateLong(date),
		Bookings: make([]models.BookingResponse, 0),
	}
}

func appendToGroup(mode domain.Mode, groups []models.DayGroup, date types.DateString, item models.BookingResponse) []models.DayGroup {
	if n := len(groups); n > 0 && groups[n-1].Date == date.String() {
		groups[n-1].Bookings = append(groups[n-1].Bookings, item)
		return groups
	}
	group := newDayGroup(mode, date)
	group.Bookings = append(group.Bookings, item)
	return append(groups, *group)
}
