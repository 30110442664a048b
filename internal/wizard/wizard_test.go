package wizard

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/meeting"
	"github.com/Freeeeeet/golf_lessons/internal/model"
	"github.com/Freeeeeet/golf_lessons/internal/shell"
	"github.com/Freeeeeet/golf_lessons/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)

// recordingNavigator запоминает переходы между страницами
type recordingNavigator struct {
	mu    sync.Mutex
	pages []shell.Page
	ch    chan shell.Page
}

func newRecordingNavigator() *recordingNavigator {
	return &recordingNavigator{ch: make(chan shell.Page, 8)}
}

func (n *recordingNavigator) Navigate(page shell.Page) {
	n.mu.Lock()
	n.pages = append(n.pages, page)
	n.mu.Unlock()
	n.ch <- page
}

func (n *recordingNavigator) visited() []shell.Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shell.Page(nil), n.pages...)
}

func newTestWizard(delay time.Duration) (*Wizard, *store.BookingStore, *recordingNavigator) {
	s := store.NewBookingStore()
	nav := newRecordingNavigator()
	gen := meeting.NewMockGenerator("https://zoom.us", rand.New(rand.NewSource(1)))
	w := New(s, gen, nav, delay, testNow, zap.NewNop())
	return w, s, nav
}

// fillSteps проводит мастер через все шаги до подтверждения
func fillSteps(t *testing.T, w *Wizard) {
	t.Helper()

	w.SelectLessonType("playing")
	require.True(t, w.Next())

	w.SelectInstructor(1)
	require.True(t, w.Next())

	w.SelectDate(testNow.AddDate(0, 0, 3))
	w.SelectTime("9:00 AM")
	w.SelectDuration("120")
	require.True(t, w.Next())

	w.SelectSkillLevel("intermediate")
	require.True(t, w.ToggleFocusArea("Putting"))
	require.True(t, w.Next())

	require.Equal(t, StepConfirm, w.Step())
}

func TestNext_GatedPerStep(t *testing.T) {
	w, _, _ := newTestWizard(time.Hour)

	// Шаг 1: без выбранного типа урока вперёд нельзя
	assert.False(t, w.Next())
	assert.Equal(t, StepLessonType, w.Step())

	w.SelectLessonType("private")
	require.True(t, w.Next())

	// Шаг 2: нужен преподаватель
	assert.False(t, w.Next())
	w.SelectInstructor(2)
	require.True(t, w.Next())

	// Шаг 3: нужны и дата, и время
	w.SelectDate(testNow.AddDate(0, 0, 1))
	assert.False(t, w.Next())
	w.SelectTime("10:00 AM")
	require.True(t, w.Next())

	// Шаг 4: нужен уровень и хотя бы одно направление
	w.SelectSkillLevel("beginner")
	assert.False(t, w.Next())
	w.ToggleFocusArea("Driving")
	require.True(t, w.Next())

	// С шага подтверждения Next не уводит
	assert.False(t, w.Next())
	assert.Equal(t, StepConfirm, w.Step())
}

func TestBack_DecrementsAndCancelsFromFirstStep(t *testing.T) {
	w, _, nav := newTestWizard(time.Hour)

	w.SelectLessonType("private")
	require.True(t, w.Next())
	w.Back()
	assert.Equal(t, StepLessonType, w.Step())

	// Back с первого шага - выход из мастера со сбросом черновика
	w.Back()
	assert.Equal(t, []shell.Page{shell.PageDashboard}, nav.visited())
	assert.Equal(t, StepLessonType, w.Step())
	assert.Empty(t, w.Draft().LessonTypeID)
}

func TestToggleFocusArea_CappedAtThree(t *testing.T) {
	w, _, _ := newTestWizard(time.Hour)

	require.True(t, w.ToggleFocusArea("Putting"))
	require.True(t, w.ToggleFocusArea("Driving"))
	require.True(t, w.ToggleFocusArea("Mental Game"))

	// Четвёртое направление не добавляется, выбор не меняется
	assert.False(t, w.ToggleFocusArea("Iron Play"))
	assert.Equal(t, []string{"Putting", "Driving", "Mental Game"}, w.Draft().FocusAreas)

	// Снятие выбора работает и при полном наборе
	require.True(t, w.ToggleFocusArea("Driving"))
	assert.Equal(t, []string{"Putting", "Mental Game"}, w.Draft().FocusAreas)
}

func TestSubmit_CreatesExactlyOneUpcomingBooking(t *testing.T) {
	w, s, _ := newTestWizard(time.Hour)
	fillSteps(t, w)

	booking, ok := w.Submit()
	require.True(t, ok)

	list := s.List()
	require.Len(t, list, 1)
	saved := list[0]

	assert.Equal(t, booking.ID, saved.ID)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, model.BookingStatusUpcoming, saved.Status)

	// Цена: 120 × 1.5 (playing) × 2 (2 часа) = 360
	assert.Equal(t, 360, saved.Price)

	assert.Equal(t, "Mike Johnson", saved.InstructorName)
	assert.Equal(t, "Playing Lesson", saved.LessonType)
	assert.Equal(t, "2 hours", saved.Duration)
	assert.Equal(t, "Intermediate", saved.SkillLevel)
	assert.Equal(t, []string{"Putting"}, saved.FocusAreas)

	// Дата и выбранное время совмещены в один момент начала
	assert.Equal(t, 9, saved.Date.Hour())
	assert.Equal(t, 18, saved.Date.Day())

	// Реквизиты встречи сгенерированы
	assert.NotEmpty(t, saved.Meeting.ID)
	assert.NotEmpty(t, saved.Meeting.Password)
	assert.NotEmpty(t, saved.Meeting.Link)
}

func TestSubmit_OnlyFromConfirmStep(t *testing.T) {
	w, s, _ := newTestWizard(time.Hour)

	w.SelectLessonType("private")
	require.True(t, w.Next())

	_, ok := w.Submit()
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestSubmit_DoubleSubmitRejected(t *testing.T) {
	w, s, _ := newTestWizard(time.Hour)
	fillSteps(t, w)

	_, ok := w.Submit()
	require.True(t, ok)

	_, ok = w.Submit()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSubmit_RedirectsToCalendarAfterDelay(t *testing.T) {
	w, _, nav := newTestWizard(20 * time.Millisecond)
	fillSteps(t, w)

	_, ok := w.Submit()
	require.True(t, ok)
	assert.True(t, w.InSuccess())

	select {
	case page := <-nav.ch:
		assert.Equal(t, shell.PageCalendar, page)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for redirect")
	}

	assert.False(t, w.InSuccess())
	assert.Equal(t, StepLessonType, w.Step())
}

func TestDismiss_SkipsSuccessDelay(t *testing.T) {
	w, _, nav := newTestWizard(time.Hour)
	fillSteps(t, w)

	_, ok := w.Submit()
	require.True(t, ok)

	// Не ждём часовой таймер - закрываем экран успеха сразу
	w.Dismiss()

	assert.Equal(t, []shell.Page{shell.PageCalendar}, nav.visited())
	assert.False(t, w.InSuccess())
}

func TestDismiss_NoopOutsideSuccess(t *testing.T) {
	w, _, nav := newTestWizard(time.Hour)

	w.Dismiss()
	assert.Empty(t, nav.visited())
}

func TestWeekNavigation(t *testing.T) {
	w, _, _ := newTestWizard(time.Hour)

	week := w.WeekDates()
	require.Len(t, week, 7)
	assert.Equal(t, time.Sunday, week[0].Weekday())

	w.NextWeek()
	assert.Equal(t, week[0].AddDate(0, 0, 7), w.WeekDates()[0])

	w.PrevWeek()
	w.PrevWeek()
	assert.Equal(t, week[0].AddDate(0, 0, -7), w.WeekDates()[0])
}

func TestAvailableTimes_FollowSelectedInstructor(t *testing.T) {
	w, _, _ := newTestWizard(time.Hour)

	assert.Nil(t, w.AvailableTimes())

	w.SelectInstructor(1)
	assert.Equal(t, []string{"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"}, w.AvailableTimes())

	w.SelectInstructor(3)
	assert.Equal(t, []string{"8:00 AM", "12:00 PM", "3:30 PM", "6:00 PM"}, w.AvailableTimes())
}
