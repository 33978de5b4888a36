package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

func TestNewBookingKey_MultiDay(t *testing.T) {
	key, err := NewBookingKey(ModeMultiDay, "2024-06-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, BookingKey("2024-06-01|09:00"), key)
}

func TestNewBookingKey_SingleDayUsesTimeOnly(t *testing.T) {
	key, err := NewBookingKey(ModeSingleDay, "", "09:00")
	require.NoError(t, err)
	assert.Equal(t, BookingKey("09:00"), key)

	withDate, err := NewBookingKey(ModeSingleDay, "2024-06-01", "09:00")
	require.NoError(t, err)
	assert.Equal(t, key, withDate)
}

func TestNewBookingKey_RejectsMalformedComponents(t *testing.T) {
	tests := []struct {
		name    string
		date    types.DateString
		time    types.TimeString
		wantErr error
	}{
		{"пустая дата", "", "09:00", ErrInvalidKeyDate},
		{"дата с разделителем", "2024-06|01", "09:00", ErrInvalidKeyDate},
		{"несуществующая дата", "2024-02-31", "09:00", ErrInvalidKeyDate},
		{"время с разделителем", "2024-06-01", "09|00", ErrInvalidKeyTime},
		{"время без нуля", "2024-06-01", "9:00", ErrInvalidKeyTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBookingKey(ModeMultiDay, tt.date, tt.time)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewBookingKey_InjectiveOverWindow(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	seen := make(map[BookingKey]string)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := types.NewDateString(day)
		for minutes := 8 * 60; minutes <= 18*60; minutes += 30 {
			slot, err := FormatMinutes(minutes)
			require.NoError(t, err)

			key, err := NewBookingKey(ModeMultiDay, date, slot)
			require.NoError(t, err)

			pair := date.String() + " " + slot.String()
			prev, dup := seen[key]
			require.False(t, dup, "key %s produced by %s and %s", key, prev, pair)
			seen[key] = pair
		}
	}

	assert.Len(t, seen, 93*21)
}

func TestParseBookingKey(t *testing.T) {
	key, err := ParseBookingKey(ModeMultiDay, "2024-06-01|09:00")
	require.NoError(t, err)
	assert.Equal(t, BookingKey("2024-06-01|09:00"), key)

	_, err = ParseBookingKey(ModeMultiDay, "2024-06-01 09:00")
	assert.ErrorIs(t, err, ErrInvalidKeyDate)

	key, err = ParseBookingKey(ModeSingleDay, "17:30")
	require.NoError(t, err)
	assert.Equal(t, BookingKey("17:30"), key)
}

func TestBookingRecord_Before(t *testing.T) {
	a := &BookingRecord{Date: "2024-06-01", Time: "10:00"}
	b := &BookingRecord{Date: "2024-06-01", Time: "09:30"}
	c := &BookingRecord{Date: "2024-05-31", Time: "18:00"}

	assert.True(t, b.Before(a))
	assert.True(t, c.Before(b))
	assert.False(t, a.Before(c))
}

func TestBookingRecord_HasSlot(t *testing.T) {
	assert.True(t, (&BookingRecord{Date: "2024-06-01", Time: "09:00"}).HasSlot(ModeMultiDay))
	assert.False(t, (&BookingRecord{Time: "09:00"}).HasSlot(ModeMultiDay))
	assert.True(t, (&BookingRecord{Time: "09:00"}).HasSlot(ModeSingleDay))
	assert.False(t, (&BookingRecord{}).HasSlot(ModeSingleDay))
}
