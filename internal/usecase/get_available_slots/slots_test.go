package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeStore struct {
	mode   domain.Mode
	booked map[domain.BookingKey]bool
}

func (f *fakeStore) Has(key domain.BookingKey) bool { return f.booked[key] }
func (f *fakeStore) Mode() domain.Mode              { return f.mode }

func TestDailySlots_Default(t *testing.T) {
	slots, err := DailySlots(480, 1080, 30)
	require.NoError(t, err)

	require.Len(t, slots, 21)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("18:00"), slots[len(slots)-1])
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1].Minutes(), slots[i].Minutes(), "%s must precede %s", slots[i-1], slots[i])
	}
}

func TestDailySlots_Deterministic(t *testing.T) {
	a, err := DailySlots(480, 1080, 30)
	require.NoError(t, err)
	b, err := DailySlots(480, 1080, 30)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDailySlots_EndNotOnStep(t *testing.T) {
	slots, err := DailySlots(9*60, 10*60, 45)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:45"}, slots)
}

func TestDailySlots_InvalidConfig(t *testing.T) {
	for _, tc := range [][3]int{{480, 1080, 0}, {1080, 480, 30}, {-1, 480, 30}, {480, 24 * 60, 30}} {
		_, err := DailySlots(tc[0], tc[1], tc[2])
		assert.ErrorIs(t, err, ErrInvalidConfig, "%v", tc)
	}
}

func TestDateWindow_InclusiveMonthsForward(t *testing.T) {
	today := time.Date(2024, time.June, 1, 15, 45, 0, 0, time.UTC)
	window := DateWindow(3, today)

	require.Len(t, window, 93)
	assert.Equal(t, types.DateString("2024-06-01"), window[0].ISO)
	assert.Equal(t, types.DateString("2024-09-01"), window[len(window)-1].ISO)
	assert.Equal(t, "2024-06", window[0].MonthKey)
	assert.Equal(t, "Sat", window[0].Weekday)
	assert.Equal(t, "Sat, Jun 1", window[0].Short)
	assert.Equal(t, "Saturday, June 1, 2024", window[0].Long)
}

func TestDateWindow_UsesLocalCalendarDay(t *testing.T) {
	// 23:30 по Нью-Йорку: по UTC уже 2 июня, но "сегодня" у пользователя 1 июня
	ny := time.FixedZone("EDT", -4*60*60)
	lateEvening := time.Date(2024, time.June, 1, 23, 30, 0, 0, ny)

	window := DateWindow(0, lateEvening)
	require.Len(t, window, 1)
	assert.Equal(t, types.DateString("2024-06-01"), window[0].ISO)
}

func TestWindowBounds_MatchWindowEnds(t *testing.T) {
	for _, today := range []time.Time{
		time.Date(2024, time.June, 1, 15, 45, 0, 0, time.UTC),
		time.Date(2024, time.January, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 0, 0, time.FixedZone("EDT", -4*60*60)),
	} {
		window := DateWindow(3, today)
		first, last := WindowBounds(3, today)
		assert.Equal(t, window[0].ISO, first, today.String())
		assert.Equal(t, window[len(window)-1].ISO, last, today.String())
	}
}

func TestMonthGroups(t *testing.T) {
	today := time.Date(2024, time.June, 29, 0, 0, 0, 0, time.UTC)
	window := DateWindow(1, today)

	groups := MonthGroups(window)
	require.Len(t, groups, 2)
	assert.Equal(t, "2024-06", groups[0].Key)
	assert.Equal(t, "June 2024", groups[0].Label)
	assert.Len(t, groups[0].Dates, 2)
	assert.Equal(t, "2024-07", groups[1].Key)
	assert.Len(t, groups[1].Dates, 29)
}

func newUseCase(t *testing.T, store BookingStore) *UseCase {
	t.Helper()
	uc, err := NewUseCase(store, Config{
		StartMinute:     480,
		EndMinute:       1080,
		IntervalMinutes: 30,
		MonthsForward:   3,
	}, fixedTime{now: time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)}, nopLogger{})
	require.NoError(t, err)
	return uc
}

func TestUseCase_ExecuteMarksBookedSlots(t *testing.T) {
	store := &fakeStore{
		mode:   domain.ModeMultiDay,
		booked: map[domain.BookingKey]bool{"2024-06-02|09:00": true},
	}
	uc := newUseCase(t, store)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-06-02"})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 21)
	assert.Equal(t, "Sunday, June 2, 2024", resp.Label)
	for _, slot := range resp.Slots {
		assert.Equal(t, slot.Time == "09:00", slot.Booked, slot.Time)
	}
}

func TestUseCase_ExecuteValidatesDate(t *testing.T) {
	uc := newUseCase(t, &fakeStore{mode: domain.ModeMultiDay})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: "2024-13-01"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Date: "2024-05-31"})
	assert.ErrorIs(t, err, ErrDateOutOfWindow)

	_, err = uc.Execute(context.Background(), &Request{Date: "2024-09-02"})
	assert.ErrorIs(t, err, ErrDateOutOfWindow)
}

func TestUseCase_SingleDayIgnoresDate(t *testing.T) {
	store := &fakeStore{
		mode:   domain.ModeSingleDay,
		booked: map[domain.BookingKey]bool{"08:30": true},
	}
	uc := newUseCase(t, store)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.True(t, resp.Date.IsZero())
	assert.True(t, resp.Slots[1].Booked)
	assert.False(t, resp.Slots[0].Booked)
}

func TestUseCase_IsDateInWindowEdges(t *testing.T) {
	uc := newUseCase(t, &fakeStore{mode: domain.ModeMultiDay})

	assert.True(t, uc.IsDateInWindow("2024-06-01"))
	assert.True(t, uc.IsDateInWindow("2024-09-01"))
	assert.False(t, uc.IsDateInWindow("2024-05-31"))
	assert.False(t, uc.IsDateInWindow("2024-09-02"))
}

func TestUseCase_Calendar(t *testing.T) {
	uc := newUseCase(t, &fakeStore{mode: domain.ModeMultiDay})

	cal := uc.Calendar(context.Background())
	assert.Equal(t, types.DateString("2024-06-01"), cal.Today)
	assert.Len(t, cal.Dates, 93)
	assert.Len(t, cal.Months, 4)
	assert.True(t, uc.IsValidTime("18:00"))
	assert.False(t, uc.IsValidTime("18:30"))
}
