// Package calendarview - проекция над хранилищем бронирований для страницы
// календаря: списки предстоящих и прошедших уроков, месячная сетка с
// отметками и временные ворота для действий "отменить" и "подключиться".
package calendarview

import (
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
	"github.com/Freeeeeet/golf_lessons/internal/store"
	"github.com/Freeeeeet/golf_lessons/internal/timegrid"
	"go.uber.org/zap"
)

// Отмена доступна больше чем за 24 часа до начала урока
const cancelCutoff = 24 * time.Hour

// Окно подключения: за 15 минут до начала и до 2 часов после.
// Окно фиксированное и от длительности урока не зависит.
const (
	joinOpensBefore = 15 * time.Minute
	joinClosesAfter = 120 * time.Minute
)

// View читает живое хранилище и держит состояние навигации по месяцам.
// Производные списки не кэшируются - каждый вызов пересчитывает их
// из хранилища заново.
type View struct {
	mu           sync.Mutex
	currentMonth time.Time

	store  *store.BookingStore
	logger *zap.Logger
}

// New создаёт представление с месяцем, в который попадает now
func New(bookings *store.BookingStore, now time.Time, logger *zap.Logger) *View {
	return &View{
		currentMonth: now,
		store:        bookings,
		logger:       logger,
	}
}

// Upcoming возвращает предстоящие уроки по возрастанию даты
func (v *View) Upcoming() []model.Booking {
	var out []model.Booking
	for _, b := range v.store.List() {
		if b.Status == model.BookingStatusUpcoming {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Past возвращает завершённые и отменённые уроки по убыванию даты
func (v *View) Past() []model.Booking {
	var out []model.Booking
	for _, b := range v.store.List() {
		if b.Status == model.BookingStatusCompleted || b.Status == model.BookingStatusCancelled {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// CanCancel сообщает, доступна ли отмена: до начала урока должно
// оставаться строго больше 24 часов. Это подсказка для UI - сама
// операция отмены в хранилище время не проверяет.
func CanCancel(b model.Booking, now time.Time) bool {
	return b.Date.Sub(now) > cancelCutoff
}

// CanJoin сообщает, открыто ли окно подключения к онлайн-уроку:
// от 15 минут до начала и до 2 часов после него.
func CanJoin(b model.Booking, now time.Time) bool {
	until := b.Date.Sub(now)
	return until <= joinOpensBefore && until >= -joinClosesAfter
}

// Cancel отменяет бронирование, опционально с причиной в свободной форме.
// Отмены назад не возвращаются. Если бронирование не найдено, молча
// возвращает false.
func (v *View) Cancel(id, reason string) bool {
	ok := v.store.Cancel(id)
	if ok {
		v.logger.Info("Booking cancelled",
			zap.String("booking_id", id),
			zap.String("reason", reason),
		)
	}
	return ok
}

// BookingsFor возвращает предстоящие бронирования на календарный день.
// Отменённые и завершённые на месячной сетке не показываются.
func (v *View) BookingsFor(date time.Time) []model.Booking {
	var out []model.Booking
	for _, b := range v.store.List() {
		if b.Status == model.BookingStatusUpcoming && timegrid.SameDay(b.Date, date) {
			out = append(out, b)
		}
	}
	return out
}

// MonthGrid возвращает сетку текущего месяца
func (v *View) MonthGrid() []*time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return timegrid.MonthGrid(v.currentMonth)
}

// CurrentMonth возвращает опорную дату месячной навигации
func (v *View) CurrentMonth() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentMonth
}

// NextMonth листает календарь на месяц вперёд
func (v *View) NextMonth() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.currentMonth = timegrid.NextMonth(v.currentMonth)
}

// PrevMonth листает календарь на месяц назад
func (v *View) PrevMonth() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.currentMonth = timegrid.PrevMonth(v.currentMonth)
}
