package wizard

import (
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/catalog"
	"github.com/Freeeeeet/golf_lessons/internal/timegrid"
)

// WeekDates возвращает 7 дней текущей недели выбора даты
func (w *Wizard) WeekDates() []time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return timegrid.WeekStrip(w.currentWeek)
}

// NextWeek листает полосу выбора даты на неделю вперёд
func (w *Wizard) NextWeek() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.currentWeek = timegrid.NextWeek(w.currentWeek)
}

// PrevWeek листает полосу выбора даты на неделю назад
func (w *Wizard) PrevWeek() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.currentWeek = timegrid.PrevWeek(w.currentWeek)
}

// AvailableTimes возвращает времена доступности выбранного преподавателя.
// Доступность одинакова для любой даты - календарной привязки у неё нет.
func (w *Wizard) AvailableTimes() []string {
	w.mu.Lock()
	id := w.draft.InstructorID
	w.mu.Unlock()

	instructor, ok := catalog.InstructorByID(id)
	if !ok {
		return nil
	}
	return instructor.Availability
}
