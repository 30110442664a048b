// Package pricing считает стоимость урока.
// Формула одна: базовая ставка преподавателя × множитель типа урока ×
// множитель длительности, округлённая до целого.
package pricing

import (
	"math"

	"github.com/Freeeeeet/golf_lessons/internal/catalog"
)

// Calculate возвращает round(base × typeMultiplier × durationMultiplier).
// Границы не проверяются: справочники статические и отрицательных
// множителей не содержат.
func Calculate(baseRate int, typeMultiplier, durationMultiplier float64) int {
	return int(math.Round(float64(baseRate) * typeMultiplier * durationMultiplier))
}

// ForSelection считает цену по выбору из справочников. Если тип урока или
// длительность не нашлись, соответствующий множитель равен 1 (документированный
// fallback). Если не найден преподаватель, цена равна 0.
func ForSelection(instructorID int64, lessonTypeID, durationID string) int {
	instructor, ok := catalog.InstructorByID(instructorID)
	if !ok {
		return 0
	}

	return Calculate(
		instructor.BaseRate,
		catalog.LessonTypeMultiplier(lessonTypeID),
		catalog.DurationMultiplier(durationID),
	)
}
