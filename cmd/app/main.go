package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/app"
	"github.com/Freeeeeet/golf_lessons/internal/calendarview"
	"github.com/Freeeeeet/golf_lessons/internal/catalog"
	"github.com/Freeeeeet/golf_lessons/internal/config"
	"github.com/Freeeeeet/golf_lessons/internal/format"
	"github.com/Freeeeeet/golf_lessons/internal/meeting"
	"github.com/Freeeeeet/golf_lessons/internal/render"
	"github.com/Freeeeeet/golf_lessons/internal/session"
	"github.com/Freeeeeet/golf_lessons/internal/shell"
	"github.com/Freeeeeet/golf_lessons/internal/store"
	"github.com/Freeeeeet/golf_lessons/internal/wizard"
)

// Демонстрационная сессия: логин, запись на урок через мастер,
// страница календаря и снимок месячной сетки в PNG.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting golf lessons demo",
		"environment", cfg.Environment,
		"meeting_base_url", cfg.MeetingBaseURL)

	now := time.Now()

	var bookings *store.BookingStore
	if cfg.SeedDemoData {
		bookings = store.Seeded(now)
	} else {
		bookings = store.NewBookingStore()
	}

	// Оболочка здесь - просто печать переходов между страницами
	navigator := shell.NavigatorFunc(func(page shell.Page) {
		fmt.Printf("➡️  Навигация: %s\n", page)
	})

	sess := session.New(logger)
	user := sess.Login("jordan.smith@example.com", "any-password")
	fmt.Printf("👤 Вошёл пользователь: %s (%s)\n", user.Name, user.Plan)

	generator := meeting.NewMockGenerator(cfg.MeetingBaseURL, rand.New(rand.NewSource(now.UnixNano())))
	w := wizard.New(bookings, generator, navigator, cfg.RedirectDelay, now, logger)

	// Проходим мастер записи от первого шага до подтверждения
	w.SelectLessonType("playing")
	w.Next()
	w.SelectInstructor(1)
	w.Next()
	lessonDay := now.AddDate(0, 0, 3)
	w.SelectDate(lessonDay)
	w.SelectTime(w.AvailableTimes()[0])
	w.SelectDuration("120")
	w.Next()
	w.SelectSkillLevel("intermediate")
	w.ToggleFocusArea("Putting")
	w.ToggleFocusArea("Course Management")
	w.SetNotes("Working on lag putting")
	w.Next()

	booking, ok := w.Submit()
	if !ok {
		log.Fatal("Failed to submit booking")
	}

	fmt.Printf("✅ Урок записан: %s с %s, %s, %s\n",
		booking.LessonType,
		booking.InstructorName,
		format.DateWithWeekday(booking.Date),
		format.Price(booking.Price))
	fmt.Printf("📹 Встреча: ID %s, пароль %s\n", booking.Meeting.ID, booking.Meeting.Password)

	// Не ждём таймер экрана успеха - закрываем досрочно
	w.Dismiss()

	// Страница календаря
	view := calendarview.New(bookings, now, logger)

	fmt.Printf("\n📅 Предстоящие уроки (%d):\n", len(view.Upcoming()))
	for _, b := range view.Upcoming() {
		status := ""
		if calendarview.CanCancel(b, now) {
			status = " [можно отменить]"
		}
		if calendarview.CanJoin(b, now) {
			status += " [можно подключиться]"
		}
		fmt.Printf("  %s %s - %s, %s%s\n",
			format.Date(b.Date), b.TimeLabel, b.LessonType, b.InstructorName, status)
	}

	fmt.Printf("\n🗂  Прошедшие уроки (%d):\n", len(view.Past()))
	for _, b := range view.Past() {
		display := format.BookingStatusDisplay(b.Status)
		fmt.Printf("  %s %s - %s %s\n", format.Date(b.Date), b.TimeLabel, display.Emoji, display.Text)
	}

	fmt.Printf("\nℹ️  Справочник: %d преподавателей, %d типов уроков, %d курсов\n",
		len(catalog.Instructors()), len(catalog.LessonTypes()), len(catalog.Courses()))

	// Снимок месячной сетки
	imageData, err := render.MonthImage(view.CurrentMonth(), bookings.List(), now)
	if err != nil {
		log.Fatalf("Failed to render month image: %v", err)
	}
	if err := os.WriteFile("month.png", imageData, 0644); err != nil {
		log.Fatalf("Failed to save month image: %v", err)
	}
	fmt.Println("\n🖼  Месячная сетка сохранена в month.png")
}
