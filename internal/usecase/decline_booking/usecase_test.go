package decline_booking

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/infra/slotstorage"
	"github.com/m04kA/SMC-SlotScheduler/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type resultRecorder struct{ results []string }

func (r *resultRecorder) ObserveDecline(result string) { r.results = append(r.results, result) }

func newStore(t *testing.T, mode domain.Mode, records ...domain.BookingRecord) *booking.Store {
	t.Helper()

	store := booking.NewStore(slotstorage.NewMemoryStorage(), domain.DefaultStorageSlot, mode, nil, nopLogger{})
	for _, r := range records {
		key, err := r.Key(mode)
		require.NoError(t, err)
		require.NoError(t, store.Put(context.Background(), key, r))
	}
	return store
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

var june1 = domain.BookingRecord{Date: "2024-06-01", Time: "09:00", Name: "Ann", Phone: "359123456789"}

func TestExecute_DeclineIsIdempotent(t *testing.T) {
	store := newStore(t, domain.ModeMultiDay, june1)
	metrics := &resultRecorder{}
	uc := NewUseCase(store, metrics, nopLogger{})
	link := "https://example.com/s?declineDate=2024-06-01&declineTime=09%3A00"

	first, err := uc.Execute(context.Background(), &Request{Location: mustURL(t, link), SelectedDate: "2024-06-01"})
	require.NoError(t, err)
	assert.True(t, first.Requested)
	assert.True(t, first.Declined)
	assert.True(t, first.GridDirty)
	assert.Equal(t, "Sat, Jun 1 · 09:00 was declined.", first.Message)
	assert.Equal(t, "https://example.com/s", first.Location.String())
	assert.Zero(t, store.Len())

	second, err := uc.Execute(context.Background(), &Request{Location: mustURL(t, link)})
	require.NoError(t, err)
	assert.True(t, second.Requested)
	assert.False(t, second.Declined)
	assert.Empty(t, second.Message)
	assert.Equal(t, "https://example.com/s", second.Location.String())
	assert.Zero(t, store.Len())

	assert.Equal(t, []string{ResultDeclined, ResultStale}, metrics.results)
}

func TestExecute_OtherDateSelectedKeepsGridClean(t *testing.T) {
	store := newStore(t, domain.ModeMultiDay, june1)
	uc := NewUseCase(store, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Location:     mustURL(t, "/?declineDate=2024-06-01&declineTime=09:00"),
		SelectedDate: "2024-06-02",
	})
	require.NoError(t, err)
	assert.True(t, resp.Declined)
	assert.False(t, resp.GridDirty)
}

func TestExecute_NoParamsIsNoop(t *testing.T) {
	store := newStore(t, domain.ModeMultiDay, june1)
	uc := NewUseCase(store, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Location: mustURL(t, "https://example.com/s?ref=mail#top")})
	require.NoError(t, err)
	assert.False(t, resp.Requested)
	assert.Equal(t, ResultNone, resp.Result)
	assert.Equal(t, "https://example.com/s?ref=mail#top", resp.Location.String())
	assert.Equal(t, 1, store.Len())
}

func TestExecute_HalfPairIsNoopButStripped(t *testing.T) {
	store := newStore(t, domain.ModeMultiDay, june1)
	uc := NewUseCase(store, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Location: mustURL(t, "/s?a=1&declineDate=2024-06-01&b=2")})
	require.NoError(t, err)
	assert.False(t, resp.Requested)
	assert.Equal(t, "/s?a=1&b=2", resp.Location.String())
	assert.Equal(t, 1, store.Len())
}

func TestExecute_PreservesOtherParamsAndFragment(t *testing.T) {
	store := newStore(t, domain.ModeMultiDay, june1)
	uc := NewUseCase(store, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Location: mustURL(t, "https://example.com/s?utm=a%20b&declineDate=2024-06-01&x=1&declineTime=09%3A00#admin"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Declined)
	assert.Equal(t, "https://example.com/s?utm=a%20b&x=1#admin", resp.Location.String())
}

func TestExecute_MalformedLinkIgnored(t *testing.T) {
	store := newStore(t, domain.ModeMultiDay, june1)
	metrics := &resultRecorder{}
	uc := NewUseCase(store, metrics, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Location: mustURL(t, "/?declineDate=tomorrow&declineTime=9")})
	require.NoError(t, err)
	assert.True(t, resp.Requested)
	assert.False(t, resp.Declined)
	assert.Equal(t, "/", resp.Location.String())
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, []string{ResultInvalid}, metrics.results)
}

func TestExecute_SingleDay(t *testing.T) {
	rec := domain.BookingRecord{Time: "10:30", Name: "Ann", Phone: "359123456789"}
	store := newStore(t, domain.ModeSingleDay, rec)
	uc := NewUseCase(store, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Location: mustURL(t, "/?decline=10%3A30&keep=1")})
	require.NoError(t, err)
	assert.True(t, resp.Declined)
	assert.True(t, resp.GridDirty)
	assert.Equal(t, domain.BookingKey("10:30"), resp.Key)
	assert.Equal(t, "10:30 was declined.", resp.Message)
	assert.Equal(t, "/?keep=1", resp.Location.String())
}

func TestExecute_NilLocation(t *testing.T) {
	uc := NewUseCase(newStore(t, domain.ModeMultiDay), nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
