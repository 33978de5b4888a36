package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/infra/slotstorage"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

const testSlot = "scheduler-bookings-v1"

type testLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *testLogger) Info(string, ...interface{})  {}
func (l *testLogger) Error(string, ...interface{}) {}
func (l *testLogger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

// flakyStorage оборачивает MemoryStorage и умеет отказывать на чтении/записи
type flakyStorage struct {
	*slotstorage.MemoryStorage
	failGet bool
	failSet bool
	sets    int
}

func (f *flakyStorage) Get(ctx context.Context, name string) ([]byte, error) {
	if f.failGet {
		return nil, fmt.Errorf("%w: disk unavailable", slotstorage.ErrRead)
	}
	return f.MemoryStorage.Get(ctx, name)
}

func (f *flakyStorage) Set(ctx context.Context, name string, value []byte) error {
	f.sets++
	if f.failSet {
		return errors.New("quota exceeded")
	}
	return f.MemoryStorage.Set(ctx, name, value)
}

func newFlaky() *flakyStorage {
	return &flakyStorage{MemoryStorage: slotstorage.NewMemoryStorage()}
}

func record(date, t string) domain.BookingRecord {
	return domain.BookingRecord{
		Date:  types.DateString(date),
		Time:  types.TimeString(t),
		Name:  "A",
		Phone: "359123456789",
	}
}

func mustKey(t *testing.T, r domain.BookingRecord) domain.BookingKey {
	t.Helper()
	key, err := r.Key(domain.ModeMultiDay)
	require.NoError(t, err)
	return key
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newFlaky(), testSlot, domain.ModeMultiDay, nil, &testLogger{})

	b := record("2024-06-01", "09:00")
	b.Notes = "first visit"
	key := mustKey(t, b)

	require.NoError(t, s.Put(ctx, key, b))

	got, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, b, *got)
	assert.True(t, s.Has(key))
	assert.Equal(t, 1, s.Len())
}

func TestStore_PersistRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newFlaky()
	s := NewStore(storage, testSlot, domain.ModeMultiDay, nil, &testLogger{})

	for _, b := range []domain.BookingRecord{
		record("2024-06-01", "09:00"),
		record("2024-06-01", "09:30"),
		record("2024-07-15", "18:00"),
	} {
		require.NoError(t, s.Put(ctx, mustKey(t, b), b))
	}
	s.Persist(ctx)

	reloaded := Open(ctx, storage, testSlot, domain.ModeMultiDay, nil, &testLogger{})
	assert.Equal(t, s.List(), reloaded.List())
}

func TestStore_LoadMissingSlotIsEmpty(t *testing.T) {
	log := &testLogger{}
	s := Open(context.Background(), newFlaky(), testSlot, domain.ModeMultiDay, nil, log)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, log.warns)
}

func TestStore_LoadCorruptSlotFailsSoft(t *testing.T) {
	ctx := context.Background()
	storage := newFlaky()
	require.NoError(t, storage.MemoryStorage.Set(ctx, testSlot, []byte("{not json")))

	log := &testLogger{}
	s := Open(ctx, storage, testSlot, domain.ModeMultiDay, nil, log)

	assert.Equal(t, 0, s.Len())
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "could not parse saved bookings")
}

func TestStore_LoadReadErrorFailsSoft(t *testing.T) {
	storage := newFlaky()
	storage.failGet = true

	log := &testLogger{}
	s := Open(context.Background(), storage, testSlot, domain.ModeMultiDay, nil, log)

	assert.Equal(t, 0, s.Len())
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "could not read saved bookings")
}

func TestStore_LoadSkipsEntriesBreakingKeyInvariant(t *testing.T) {
	ctx := context.Background()
	storage := newFlaky()
	raw := `{
		"2024-06-01|09:00": {"date":"2024-06-01","time":"09:00","name":"A","phone":"359123456789","notes":""},
		"2024-06-01|10:00": {"date":"2024-06-01","time":"09:00","name":"B","phone":"359123456789","notes":""},
		"garbage": {"date":"2024-06-01","time":"11:00","name":"C","phone":"359123456789","notes":""},
		"2024-06-01|12:00": 42
	}`
	require.NoError(t, storage.MemoryStorage.Set(ctx, testSlot, []byte(raw)))

	log := &testLogger{}
	s := Open(ctx, storage, testSlot, domain.ModeMultiDay, nil, log)

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("2024-06-01|09:00"))
	assert.Len(t, log.warns, 3)
}

func TestStore_PersistFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	storage := newFlaky()
	storage.failSet = true
	log := &testLogger{}
	s := NewStore(storage, testSlot, domain.ModeMultiDay, nil, log)

	b := record("2024-06-01", "09:00")
	require.NoError(t, s.Put(ctx, mustKey(t, b), b))

	assert.True(t, s.Has(mustKey(t, b)))
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "could not save bookings")
}

func TestStore_RemovePersistsOnlyOnChange(t *testing.T) {
	ctx := context.Background()
	storage := newFlaky()
	s := NewStore(storage, testSlot, domain.ModeMultiDay, nil, &testLogger{})

	b := record("2024-06-01", "09:00")
	key := mustKey(t, b)
	require.NoError(t, s.Put(ctx, key, b))
	require.Equal(t, 1, storage.sets)

	assert.False(t, s.Remove(ctx, "2024-06-01|10:00"))
	assert.Equal(t, 1, storage.sets)

	assert.True(t, s.Remove(ctx, key))
	assert.Equal(t, 2, storage.sets)
	assert.False(t, s.Remove(ctx, key))
	assert.Equal(t, 2, storage.sets)
}

func TestStore_ListSortedByDateThenTime(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newFlaky(), testSlot, domain.ModeMultiDay, nil, &testLogger{})

	for _, b := range []domain.BookingRecord{
		record("2024-07-01", "08:00"),
		record("2024-06-01", "17:30"),
		record("2024-06-01", "08:30"),
	} {
		require.NoError(t, s.Put(ctx, mustKey(t, b), b))
	}

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "2024-06-01 08:30", list[0].Date.String()+" "+list[0].Time.String())
	assert.Equal(t, "2024-06-01 17:30", list[1].Date.String()+" "+list[1].Time.String())
	assert.Equal(t, "2024-07-01 08:00", list[2].Date.String()+" "+list[2].Time.String())
}

func TestStore_PutRejectsKeyMismatch(t *testing.T) {
	s := NewStore(newFlaky(), testSlot, domain.ModeMultiDay, nil, &testLogger{})

	err := s.Put(context.Background(), "2024-06-01|10:00", record("2024-06-01", "09:00"))
	assert.ErrorIs(t, err, ErrKeyMismatch)

	err = s.Put(context.Background(), "09:00", domain.BookingRecord{Time: "09:00"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Equal(t, 0, s.Len())
}

func TestStore_SingleDayMode(t *testing.T) {
	ctx := context.Background()
	storage := newFlaky()
	s := NewStore(storage, testSlot, domain.ModeSingleDay, nil, &testLogger{})

	b := domain.BookingRecord{Time: "09:00", Name: "A", Phone: "359123456789"}
	require.NoError(t, s.Put(ctx, "09:00", b))

	reloaded := Open(ctx, storage, testSlot, domain.ModeSingleDay, nil, &testLogger{})
	got, ok := reloaded.Get("09:00")
	require.True(t, ok)
	assert.Equal(t, b, *got)
}

// Известная гонка: два экземпляра (вкладки) читают один слот, оба видят слот свободным,
// и вторая запись молча перезаписывает первую
func TestStore_TwoInstancesSharingSlotLastWriteWins(t *testing.T) {
	ctx := context.Background()
	storage := newFlaky()

	tabA := Open(ctx, storage, testSlot, domain.ModeMultiDay, nil, &testLogger{})
	tabB := Open(ctx, storage, testSlot, domain.ModeMultiDay, nil, &testLogger{})

	first := record("2024-06-01", "09:00")
	first.Name = "Tab A"
	second := record("2024-06-01", "09:00")
	second.Name = "Tab B"
	key := mustKey(t, first)

	require.False(t, tabA.Has(key))
	require.False(t, tabB.Has(key))
	require.NoError(t, tabA.Put(ctx, key, first))
	require.NoError(t, tabB.Put(ctx, key, second))

	fresh := Open(ctx, storage, testSlot, domain.ModeMultiDay, nil, &testLogger{})
	got, ok := fresh.Get(key)
	require.True(t, ok)
	assert.Equal(t, "Tab B", got.Name)
}
