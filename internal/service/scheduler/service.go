package scheduler

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler/models"
	"github.com/m04kA/SMC-SlotScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SlotScheduler/internal/usecase/decline_booking"
	"github.com/m04kA/SMC-SlotScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// LocalSession сессия собственной страницы процесса, которую открывает Start
const LocalSession = "local"

// Через сколько неактивная клиентская сессия забывается
const sessionTTL = 30 * time.Minute

// session выбор одного клиента: дата, открытая форма и уведомления
type session struct {
	selectedDate types.DateString
	activeSlot   *models.ActiveSlot
	toaster      Toaster
	lastSeen     time.Time
}

// Service состояние приложения. Бронирования общие, а выбранная дата, открытая форма
// и уведомления хранятся отдельно для каждой сессии
type Service struct {
	mu sync.Mutex

	store      BookingStore
	slots      SlotGenerator
	reconciler Reconciler
	submitter  Submitter
	renderer   Renderer
	newToaster func() Toaster
	logger     Logger
	now        func() time.Time

	started  bool
	sessions map[string]*session
}

// NewService создает новый экземпляр сервиса. renderer может быть nil,
// newToaster вызывается для каждой новой сессии
func NewService(
	store BookingStore,
	slots SlotGenerator,
	reconciler Reconciler,
	submitter Submitter,
	renderer Renderer,
	newToaster func() Toaster,
	logger Logger,
) *Service {
	return &Service{
		store:      store,
		slots:      slots,
		reconciler: reconciler,
		submitter:  submitter,
		renderer:   renderer,
		newToaster: newToaster,
		logger:     logger,
		now:        time.Now,
		sessions:   make(map[string]*session),
	}
}

// Start строит окно дат, выбирает первую дату и до первой отрисовки
// применяет ссылку отказа из location
func (s *Service) Start(ctx context.Context, location *url.URL) (*decline_booking.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Start: mode=%s", s.store.Mode())

	// 1. Окно дат и выбор первой даты
	if state, ok := s.sessions[LocalSession]; ok {
		state.toaster.Close()
	}
	state := s.newSessionLocked(ctx)
	s.sessions[LocalSession] = state
	s.started = true

	// 2. Сверка со ссылкой отказа до первой отрисовки
	decline, err := s.reconcileLocked(ctx, state, location)
	if err != nil {
		return nil, err
	}

	// 3. Первая отрисовка
	s.renderLocked(ctx, state)
	return decline, nil
}

// Session возвращает операции сессии id. Сессия создается при первом обращении
func (s *Service) Session(id string) *Session {
	return &Session{svc: s, id: id}
}

// Close закрывает уведомления всех сессий
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, state := range s.sessions {
		state.toaster.Close()
		delete(s.sessions, id)
	}
}

// Session операции одного клиента
type Session struct {
	svc *Service
	id  string
}

// Reconcile применяет ссылку отказа при очередной загрузке страницы
func (c *Session) Reconcile(ctx context.Context, location *url.URL) (*decline_booking.Response, error) {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	state := s.sessionLocked(ctx, c.id)

	decline, err := s.reconcileLocked(ctx, state, location)
	if err != nil {
		return nil, err
	}
	if decline.GridDirty {
		s.renderLocked(ctx, state)
	}
	return decline, nil
}

// SelectDate выбирает дату из окна бронирования
func (c *Session) SelectDate(ctx context.Context, date types.DateString) (*models.View, error) {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	state := s.sessionLocked(ctx, c.id)

	if s.store.Mode().IsDateAware() {
		dates := s.slots.Calendar(ctx).Dates
		if indexOf(dates, date) < 0 {
			s.logger.Warn("SelectDate: date=%s is outside of the window", date)
			return nil, fmt.Errorf("%w: %s", ErrDateNotInWindow, date)
		}
		state.selectedDate = date
	}

	return s.renderLocked(ctx, state), nil
}

// MoveSelection сдвигает выбранную дату на delta дней, не выходя за границы окна
func (c *Session) MoveSelection(ctx context.Context, delta int) (*models.View, error) {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	state := s.sessionLocked(ctx, c.id)

	dates := s.slots.Calendar(ctx).Dates
	if len(dates) > 0 && s.store.Mode().IsDateAware() {
		next := min(max(indexOf(dates, state.selectedDate)+delta, 0), len(dates)-1)
		state.selectedDate = dates[next].ISO
	}

	return s.renderLocked(ctx, state), nil
}

// SelectSlot открывает форму для слота выбранной даты.
// Занятый слот форму не открывает, пользователь получает уведомление
func (c *Session) SelectSlot(ctx context.Context, t types.TimeString) (*models.ActiveSlot, error) {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	state := s.sessionLocked(ctx, c.id)

	if !s.slots.IsValidTime(t) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, t)
	}

	mode := s.store.Mode()
	date := state.selectedDate
	if !mode.IsDateAware() {
		date = ""
	}

	key, err := domain.NewBookingKey(mode, date, t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if s.store.Has(key) {
		state.toaster.Show(MsgSlotReserved)
		return nil, ErrSlotReserved
	}

	state.activeSlot = &models.ActiveSlot{
		Date:  date,
		Time:  t,
		Label: domain.FormatSlotLabel(date, t),
	}
	active := *state.activeSlot
	return &active, nil
}

// CloseModal закрывает форму без побочных эффектов
func (c *Session) CloseModal() {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.sessions[c.id]; ok {
		state.activeSlot = nil
	}
}

// Submit бронирует слот, открытый в этой сессии
func (c *Session) Submit(ctx context.Context, form models.Form) (*create_booking.Response, error) {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[c.id]
	if !ok || state.activeSlot == nil {
		return nil, ErrNoActiveSlot
	}
	state.lastSeen = s.now()

	return s.bookLocked(ctx, state, &models.BookRequest{
		Date: state.activeSlot.Date,
		Time: state.activeSlot.Time,
		Form: form,
	})
}

// Book бронирует слот, указанный в запросе, без открытой формы
func (c *Session) Book(ctx context.Context, req *models.BookRequest) (*create_booking.Response, error) {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookLocked(ctx, s.sessionLocked(ctx, c.id), req)
}

// View возвращает текущий снимок состояния сессии
func (c *Session) View(ctx context.Context) (*models.View, error) {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	return s.buildViewLocked(ctx, s.sessionLocked(ctx, c.id))
}

// Toast возвращает видимое уведомление сессии
func (c *Session) Toast() string {
	s := c.svc
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[c.id]
	if !ok {
		return ""
	}
	return state.toaster.Current()
}

// sessionLocked возвращает сессию id, создавая ее с первой датой окна,
// и забывает сессии, неактивные дольше sessionTTL
func (s *Service) sessionLocked(ctx context.Context, id string) *session {
	now := s.now()

	state, ok := s.sessions[id]
	if !ok {
		state = s.newSessionLocked(ctx)
		s.sessions[id] = state
	}
	state.lastSeen = now

	for key, other := range s.sessions {
		if key != LocalSession && now.Sub(other.lastSeen) > sessionTTL {
			other.toaster.Close()
			delete(s.sessions, key)
		}
	}

	return state
}

func (s *Service) newSessionLocked(ctx context.Context) *session {
	state := &session{
		toaster:  s.newToaster(),
		lastSeen: s.now(),
	}
	if dates := s.slots.Calendar(ctx).Dates; len(dates) > 0 {
		state.selectedDate = dates[0].ISO
	}
	return state
}

func (s *Service) reconcileLocked(ctx context.Context, state *session, location *url.URL) (*decline_booking.Response, error) {
	decline, err := s.reconciler.Execute(ctx, &decline_booking.Request{
		Location:     location,
		SelectedDate: state.selectedDate,
	})
	if err != nil {
		s.logger.Error("Reconcile: %v", err)
		return nil, fmt.Errorf("%w: Reconcile - %v", ErrInternal, err)
	}

	if decline.Message != "" {
		state.toaster.Show(decline.Message)
	}
	if decline.Declined && state.activeSlot != nil && state.activeSlot.Date == decline.Booking.Date && state.activeSlot.Time == decline.Booking.Time {
		state.activeSlot = nil
	}
	return decline, nil
}

func (s *Service) bookLocked(ctx context.Context, state *session, req *models.BookRequest) (*create_booking.Response, error) {
	resp, err := s.submitter.Execute(ctx, req.ToCreateBookingRequest())
	if err != nil {
		switch {
		case errors.Is(err, create_booking.ErrMissingName):
			state.toaster.Show(MsgMissingName)
		case errors.Is(err, create_booking.ErrSlotTaken):
			state.toaster.Show(MsgSlotReserved)
		}
		// Ошибка телефона показывается у поля, форма остается открытой
		return nil, err
	}

	state.activeSlot = nil
	state.toaster.Show(msgReserved(domain.FormatSlotLabel(resp.Booking.Date, resp.Booking.Time)))
	s.renderLocked(ctx, state)
	return resp, nil
}

// renderLocked строит снимок и передает его поверхности отрисовки
func (s *Service) renderLocked(ctx context.Context, state *session) *models.View {
	view, err := s.buildViewLocked(ctx, state)
	if err != nil {
		s.logger.Error("Render: %v", err)
		return nil
	}
	if s.renderer != nil {
		s.renderer.Render(view)
	}
	return view
}

func (s *Service) buildViewLocked(ctx context.Context, state *session) (*models.View, error) {
	mode := s.store.Mode()
	calendar := s.slots.Calendar(ctx)

	view := &models.View{
		Mode:  mode,
		Today: calendar.Today,
		Toast: state.toaster.Current(),
	}

	if mode.IsDateAware() {
		// Окно сдвигается вместе с днем: выпавшая из него дата заменяется первой
		if len(calendar.Dates) > 0 && indexOf(calendar.Dates, state.selectedDate) < 0 {
			state.selectedDate = calendar.Dates[0].ISO
		}
		view.SelectedDate = state.selectedDate
		view.Dates = calendar.Dates
		view.Months = calendar.Months
	}

	grid, err := s.slots.Execute(ctx, &get_available_slots.Request{Date: view.SelectedDate})
	if err != nil {
		return nil, fmt.Errorf("%w: slot grid - %v", ErrInternal, err)
	}
	view.SelectedLabel = grid.Label
	view.Slots = grid.Slots

	if state.activeSlot != nil {
		active := *state.activeSlot
		view.ActiveSlot = &active
	}
	return view, nil
}

func indexOf(dates []domain.DateOption, date types.DateString) int {
	return slices.IndexFunc(dates, func(d domain.DateOption) bool {
		return d.ISO == date
	})
}
