package slotstorage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slotName = "scheduler-bookings-v1"

// roundTrip общая проверка контракта Storage для всех драйверов
func roundTrip(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, slotName)
	require.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, s.Set(ctx, slotName, []byte(`{"a":1}`)))
	require.NoError(t, s.Set(ctx, slotName, []byte(`{"b":2}`)))

	got, err := s.Get(ctx, slotName)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, string(got))
}

func TestMemoryStorage(t *testing.T) {
	roundTrip(t, NewMemoryStorage())
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	value := []byte("abc")
	require.NoError(t, s.Set(ctx, slotName, value))
	value[0] = 'X'

	got, err := s.Get(ctx, slotName)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStorage(dir)
	require.NoError(t, err)

	roundTrip(t, s)

	_, err = os.Stat(filepath.Join(dir, slotName+".json"))
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStorage_RejectsUnsafeNames(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape", `a\b`, ".hidden"} {
		_, err := s.Get(context.Background(), name)
		assert.ErrorIs(t, err, ErrInvalidSlotName, name)
		assert.ErrorIs(t, s.Set(context.Background(), name, nil), ErrInvalidSlotName, name)
	}
}

func TestRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStorage(client, "scheduler:")
	roundTrip(t, s)

	raw, err := mr.Get("scheduler:" + slotName)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, raw)
}

func TestRedisStorage_ReadErrorWrapped(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, err := NewRedisStorage(client, "").Get(context.Background(), slotName)
	assert.ErrorIs(t, err, ErrRead)
}

func TestPostgresStorage_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgresStorage(db, "")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM storage_slots WHERE name = $1")).
		WithArgs(slotName).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"x":1}`))

	got, err := s.Get(context.Background(), slotName)
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, string(got))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM storage_slots WHERE name = $1")).
		WithArgs(slotName).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err = s.Get(context.Background(), slotName)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewPostgresStorage(db, "")

	mock.ExpectExec(`INSERT INTO storage_slots .* ON CONFLICT \(name\) DO UPDATE`).
		WithArgs(slotName, `{"x":1}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Set(context.Background(), slotName, []byte(`{"x":1}`)))

	mock.ExpectExec(`INSERT INTO storage_slots`).
		WithArgs(slotName, `{}`).
		WillReturnError(errors.New("connection reset"))
	err = s.Set(context.Background(), slotName, []byte(`{}`))
	assert.ErrorIs(t, err, ErrWrite)

	assert.NoError(t, mock.ExpectationsWereMet())
}
