package wizard

import (
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/catalog"
	"github.com/Freeeeeet/golf_lessons/internal/model"
	"github.com/Freeeeeet/golf_lessons/internal/pricing"
	"github.com/Freeeeeet/golf_lessons/internal/shell"
	"go.uber.org/zap"
)

// Price считает текущую цену по черновику. Пока преподаватель не выбран,
// цена равна 0; при промахе по справочнику типа или длительности
// соответствующий множитель равен 1.
func (w *Wizard) Price() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return pricing.ForSelection(w.draft.InstructorID, w.draft.LessonTypeID, w.draft.DurationID)
}

// Submit собирает финальное бронирование и кладёт его в хранилище.
// Доступен только с шага подтверждения и только при полностью
// заполненном черновике: все шаги проверяются заново.
// Возвращает собранное бронирование и true при успехе.
func (w *Wizard) Submit() (model.Booking, bool) {
	w.mu.Lock()

	if w.step != StepConfirm || w.success {
		w.mu.Unlock()
		return model.Booking{}, false
	}
	for s := StepLessonType; s <= StepPreferences; s++ {
		if !w.stepSatisfied(s) {
			w.mu.Unlock()
			return model.Booking{}, false
		}
	}

	instructor, ok := catalog.InstructorByID(w.draft.InstructorID)
	if !ok {
		w.mu.Unlock()
		return model.Booking{}, false
	}

	lessonType, _ := catalog.LessonTypeByID(w.draft.LessonTypeID)
	duration, _ := catalog.DurationByID(w.draft.DurationID)
	skillLevel, _ := catalog.SkillLevelByID(w.draft.SkillLevelID)

	details := w.generator.Generate()

	booking := model.Booking{
		ID:              w.newID(),
		InstructorName:  instructor.Name,
		InstructorImage: instructor.Image,
		LessonType:      lessonType.Name,
		Date:            combineDateTime(*w.draft.Date, w.draft.TimeLabel),
		TimeLabel:       w.draft.TimeLabel,
		Duration:        duration.Name,
		SkillLevel:      skillLevel.Name,
		FocusAreas:      append([]string(nil), w.draft.FocusAreas...),
		AdditionalNotes: w.draft.AdditionalNotes,
		Price: pricing.ForSelection(
			w.draft.InstructorID, w.draft.LessonTypeID, w.draft.DurationID),
		Status:  model.BookingStatusUpcoming,
		Meeting: details,
	}

	w.success = true
	w.successTimer = time.AfterFunc(w.redirectDelay, w.finishSuccess)
	w.mu.Unlock()

	w.store.Add(booking)

	w.logger.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("instructor", booking.InstructorName),
		zap.String("lesson_type", booking.LessonType),
		zap.Time("date", booking.Date),
		zap.Int("price", booking.Price),
	)

	return booking, true
}

// InSuccess сообщает, показывается ли сейчас экран успеха
func (w *Wizard) InSuccess() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.success
}

// Dismiss закрывает экран успеха досрочно, не дожидаясь таймера.
// Вне экрана успеха ничего не делает.
func (w *Wizard) Dismiss() {
	w.mu.Lock()
	if !w.success {
		w.mu.Unlock()
		return
	}
	if w.successTimer != nil {
		w.successTimer.Stop()
	}
	w.mu.Unlock()

	w.finishSuccess()
}

// finishSuccess сбрасывает мастер и уводит пользователя в календарь,
// где видно новое бронирование.
func (w *Wizard) finishSuccess() {
	w.mu.Lock()
	if !w.success {
		w.mu.Unlock()
		return
	}
	w.resetLocked()
	w.mu.Unlock()

	w.navigator.Navigate(shell.PageCalendar)
}

// combineDateTime совмещает выбранную дату и время суток из доступности
// преподавателя в один момент начала урока. Если время не удалось
// разобрать, остаётся полночь.
func combineDateTime(date time.Time, timeLabel string) time.Time {
	t, err := time.Parse("3:04 PM", timeLabel)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
