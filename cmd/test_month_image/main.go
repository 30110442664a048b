package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
	"github.com/Freeeeeet/golf_lessons/internal/render"
)

func main() {
	// Создаем тестовые данные
	now := time.Now()
	day := func(offset, hour int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
	}

	bookings := []model.Booking{
		{
			ID:             "1",
			InstructorName: "Mike Johnson",
			LessonType:     "Private Lesson",
			Date:           day(2, 9),
			TimeLabel:      "9:00 AM",
			Status:         model.BookingStatusUpcoming,
		},
		{
			ID:             "2",
			InstructorName: "Sarah Wilson",
			LessonType:     "Playing Lesson",
			Date:           day(2, 14),
			TimeLabel:      "2:00 PM",
			Status:         model.BookingStatusUpcoming,
		},
		{
			ID:             "3",
			InstructorName: "David Chen",
			LessonType:     "Group Lesson",
			Date:           day(5, 12),
			TimeLabel:      "12:00 PM",
			Status:         model.BookingStatusUpcoming,
		},
		{
			// Отменённый урок - на сетке появиться не должен
			ID:             "4",
			InstructorName: "Mike Johnson",
			LessonType:     "Private Lesson",
			Date:           day(6, 11),
			TimeLabel:      "11:00 AM",
			Status:         model.BookingStatusCancelled,
		},
	}

	// Генерируем изображение
	imageData, err := render.MonthImage(now, bookings, now)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "month.png"
	err = os.WriteFile(filename, imageData, 0644)
	if err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Месяц: %s %d\n", now.Month(), now.Year())
	fmt.Printf("📊 Бронирований: %d\n", len(bookings))
}
