// Package wizard реализует пошаговый мастер записи на урок:
// тип урока -> преподаватель -> дата и время -> предпочтения -> подтверждение.
// Поток строго линейный, перескакивать шаги нельзя.
package wizard

import (
	"sync"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/meeting"
	"github.com/Freeeeeet/golf_lessons/internal/shell"
	"github.com/Freeeeeet/golf_lessons/internal/store"
	"github.com/Freeeeeet/golf_lessons/internal/timegrid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Step int

const (
	StepLessonType  Step = 1
	StepInstructor  Step = 2
	StepDateTime    Step = 3
	StepPreferences Step = 4
	StepConfirm     Step = 5
)

// Одновременно можно выбрать не больше трёх направлений тренировки
const maxFocusAreas = 3

// DefaultDurationID - длительность по умолчанию (1 час)
const DefaultDurationID = "60"

// Draft - черновик бронирования, живёт только внутри мастера.
// Поля заполняются независимо по мере прохождения шагов.
type Draft struct {
	LessonTypeID    string
	InstructorID    int64 // 0 - не выбран
	Date            *time.Time
	TimeLabel       string
	DurationID      string
	SkillLevelID    string
	FocusAreas      []string
	AdditionalNotes string
}

// Wizard ведёт пользователя по шагам и на подтверждении собирает
// финальное бронирование в общее хранилище.
type Wizard struct {
	mu    sync.Mutex
	step  Step
	draft Draft

	currentWeek time.Time // опорная дата недельной полосы выбора даты

	success      bool
	successTimer *time.Timer

	store         *store.BookingStore
	generator     meeting.Generator
	navigator     shell.Navigator
	redirectDelay time.Duration
	logger        *zap.Logger

	newID func() string
}

// New создаёт мастер на первом шаге. now задаёт начальную неделю
// в выборе даты. redirectDelay - пауза на экране успеха перед переходом
// в календарь.
func New(
	bookings *store.BookingStore,
	generator meeting.Generator,
	navigator shell.Navigator,
	redirectDelay time.Duration,
	now time.Time,
	logger *zap.Logger,
) *Wizard {
	return &Wizard{
		step:          StepLessonType,
		draft:         Draft{DurationID: DefaultDurationID},
		currentWeek:   now,
		store:         bookings,
		generator:     generator,
		navigator:     navigator,
		redirectDelay: redirectDelay,
		logger:        logger,
		newID:         func() string { return uuid.New().String() },
	}
}

// Step возвращает текущий шаг
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft возвращает копию текущего черновика
func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()

	d := w.draft
	d.FocusAreas = append([]string(nil), w.draft.FocusAreas...)
	return d
}

// SelectLessonType выбирает тип урока на шаге 1
func (w *Wizard) SelectLessonType(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.LessonTypeID = id
}

// SelectInstructor выбирает преподавателя на шаге 2
func (w *Wizard) SelectInstructor(id int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.InstructorID = id
}

// SelectDate выбирает дату урока на шаге 3
func (w *Wizard) SelectDate(date time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d := timegrid.Midnight(date)
	w.draft.Date = &d
}

// SelectTime выбирает время из доступности преподавателя на шаге 3
func (w *Wizard) SelectTime(label string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.TimeLabel = label
}

// SelectDuration выбирает длительность урока
func (w *Wizard) SelectDuration(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.DurationID = id
}

// SelectSkillLevel выбирает уровень подготовки на шаге 4
func (w *Wizard) SelectSkillLevel(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.SkillLevelID = id
}

// SetNotes сохраняет дополнительные пожелания (опционально)
func (w *Wizard) SetNotes(notes string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.AdditionalNotes = notes
}

// ToggleFocusArea добавляет или убирает направление тренировки.
// Четвёртое направление при трёх выбранных не добавляется - выбор
// остаётся прежним, возвращается false.
func (w *Wizard) ToggleFocusArea(area string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, a := range w.draft.FocusAreas {
		if a == area {
			w.draft.FocusAreas = append(w.draft.FocusAreas[:i], w.draft.FocusAreas[i+1:]...)
			return true
		}
	}

	if len(w.draft.FocusAreas) >= maxFocusAreas {
		return false
	}

	w.draft.FocusAreas = append(w.draft.FocusAreas, area)
	return true
}

// Next переходит на следующий шаг, если текущий заполнен.
// При незаполненном шаге ничего не меняет и возвращает false.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step >= StepConfirm || !w.stepSatisfied(w.step) {
		return false
	}

	w.step++
	return true
}

// Back возвращается на предыдущий шаг. С первого шага Back означает
// выход из мастера: черновик сбрасывается, пользователь уходит
// на дашборд.
func (w *Wizard) Back() {
	w.mu.Lock()

	if w.step > StepLessonType {
		w.step--
		w.mu.Unlock()
		return
	}

	w.resetLocked()
	w.mu.Unlock()

	w.navigator.Navigate(shell.PageDashboard)
}

// stepSatisfied проверяет обязательные поля шага.
// Вызывается под мьютексом.
func (w *Wizard) stepSatisfied(step Step) bool {
	switch step {
	case StepLessonType:
		return w.draft.LessonTypeID != ""
	case StepInstructor:
		return w.draft.InstructorID != 0
	case StepDateTime:
		return w.draft.Date != nil && w.draft.TimeLabel != ""
	case StepPreferences:
		return w.draft.SkillLevelID != "" && len(w.draft.FocusAreas) > 0
	default:
		return true
	}
}

func (w *Wizard) resetLocked() {
	w.step = StepLessonType
	w.draft = Draft{DurationID: DefaultDurationID}
	w.success = false
	if w.successTimer != nil {
		w.successTimer.Stop()
		w.successTimer = nil
	}
}
