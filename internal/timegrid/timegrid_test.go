package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestWeekStrip_AlwaysSevenDaysFromSunday(t *testing.T) {
	// Среда в середине месяца
	week := WeekStrip(date(2026, time.April, 15))

	require.Len(t, week, 7)
	assert.Equal(t, time.Sunday, week[0].Weekday())
	for i := 1; i < 7; i++ {
		assert.Equal(t, week[i-1].AddDate(0, 0, 1), week[i])
	}
}

func TestWeekStrip_CrossesMonthBoundary(t *testing.T) {
	// 1 апреля 2026 - среда, неделя начинается в марте
	week := WeekStrip(date(2026, time.April, 1))

	require.Len(t, week, 7)
	assert.Equal(t, date(2026, time.March, 29), week[0])
	assert.Equal(t, date(2026, time.April, 4), week[6])
}

func TestWeekStrip_SundayInput(t *testing.T) {
	sunday := date(2026, time.April, 5)
	week := WeekStrip(sunday)

	assert.Equal(t, sunday, week[0])
}

func TestMonthGrid_ThirtyDayMonthStartingWednesday(t *testing.T) {
	// Апрель 2026: 30 дней, 1-е число - среда
	grid := MonthGrid(date(2026, time.April, 10))

	require.Len(t, grid, 33) // 3 ведущие заглушки + 30 дней

	for i := 0; i < 3; i++ {
		assert.Nil(t, grid[i])
	}
	require.NotNil(t, grid[3])
	assert.Equal(t, 1, grid[3].Day())
	require.NotNil(t, grid[32])
	assert.Equal(t, 30, grid[32].Day())
}

func TestMonthGrid_NoLeadingPlaceholdersWhenMonthStartsSunday(t *testing.T) {
	// Февраль 2026 начинается с воскресенья
	grid := MonthGrid(date(2026, time.February, 14))

	require.Len(t, grid, 28)
	require.NotNil(t, grid[0])
	assert.Equal(t, 1, grid[0].Day())
}

func TestMonthGrid_NoTrailingPadding(t *testing.T) {
	grid := MonthGrid(date(2026, time.April, 1))

	// Последний элемент - последний день месяца, а не заглушка
	last := grid[len(grid)-1]
	require.NotNil(t, last)
	assert.Equal(t, 30, last.Day())
}

func TestMonthNavigation_YearBoundaries(t *testing.T) {
	next := NextMonth(date(2025, time.December, 20))
	assert.Equal(t, date(2026, time.January, 1), next)

	prev := PrevMonth(date(2026, time.January, 20))
	assert.Equal(t, date(2025, time.December, 1), prev)
}

func TestWeekNavigation(t *testing.T) {
	ref := date(2026, time.April, 15)

	assert.Equal(t, date(2026, time.April, 22), NextWeek(ref))
	assert.Equal(t, date(2026, time.April, 8), PrevWeek(ref))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.April, 15, 9, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.April, 15, 23, 59, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.AddDate(0, 0, 1)))
}
