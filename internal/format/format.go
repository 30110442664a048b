// Package format - помощники отображения дат, цен и статусов.
package format

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
)

// Price форматирует цену урока в долларах, без центов
func Price(price int) string {
	return fmt.Sprintf("$%d", price)
}

// Date форматирует только дату
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DateWithWeekday форматирует дату с днём недели
func DateWithWeekday(t time.Time) string {
	return t.Format("Monday, Jan 2, 2006")
}

// Time форматирует время начала урока
func Time(t time.Time) string {
	return t.Format("3:04 PM")
}

// StatusDisplay представляет отображение статуса бронирования
type StatusDisplay struct {
	Emoji string
	Text  string
}

// BookingStatusDisplay возвращает emoji и текст для статуса бронирования
func BookingStatusDisplay(status model.BookingStatus) StatusDisplay {
	displays := map[model.BookingStatus]StatusDisplay{
		model.BookingStatusUpcoming:  {"📅", "Upcoming"},
		model.BookingStatusCompleted: {"✔️", "Completed"},
		model.BookingStatusCancelled: {"❌", "Cancelled"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Unknown"}
}

// CountdownClock форматирует остаток времени квиза как М:СС
func CountdownClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
