package render

import (
	"testing"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestMonthImage_ProducesPNG(t *testing.T) {
	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)

	bookings := []model.Booking{
		{
			ID:             "1",
			InstructorName: "Mike Johnson",
			TimeLabel:      "9:00 AM",
			Date:           time.Date(2026, time.April, 18, 9, 0, 0, 0, time.UTC),
			Status:         model.BookingStatusUpcoming,
		},
		{
			// Отменённый урок сетку не меняет, но и не ломает
			ID:             "2",
			InstructorName: "Sarah Wilson",
			TimeLabel:      "2:00 PM",
			Date:           time.Date(2026, time.April, 18, 14, 0, 0, 0, time.UTC),
			Status:         model.BookingStatusCancelled,
		},
	}

	data, err := MonthImage(now, bookings, now)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, pngMagic, data[:4])
}

func TestMonthImage_EmptyStore(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	data, err := MonthImage(now, nil, now)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:4])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "aaaa…", truncate("aaaaaaaaaa", 5))
}
