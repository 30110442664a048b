// Package timegrid содержит чистые функции построения календарных сеток:
// недельная полоса для выбора даты в мастере записи и месячная сетка
// для страницы календаря.
package timegrid

import "time"

// WeekStrip возвращает 7 последовательных дней недели, в которую попадает
// ref. Неделя начинается с воскресенья. Границы месяца полоса пересекает
// свободно, длина всегда ровно 7.
func WeekStrip(ref time.Time) []time.Time {
	start := Midnight(ref).AddDate(0, 0, -int(ref.Weekday()))

	week := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// MonthGrid возвращает сетку месяца, в который попадает ref: сначала
// nil-заглушки по числу дней недели перед 1-м числом, затем по одной дате
// на каждый день месяца. Хвостовых заглушек нет - сетка дополняется
// только спереди.
func MonthGrid(ref time.Time) []*time.Time {
	firstDay := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	grid := make([]*time.Time, 0, int(firstDay.Weekday())+daysInMonth)

	for i := 0; i < int(firstDay.Weekday()); i++ {
		grid = append(grid, nil)
	}

	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
		grid = append(grid, &d)
	}

	return grid
}

// NextWeek сдвигает опорную дату на неделю вперёд
func NextWeek(ref time.Time) time.Time {
	return ref.AddDate(0, 0, 7)
}

// PrevWeek сдвигает опорную дату на неделю назад
func PrevWeek(ref time.Time) time.Time {
	return ref.AddDate(0, 0, -7)
}

// NextMonth возвращает первое число следующего месяца
func NextMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, ref.Location())
}

// PrevMonth возвращает первое число предыдущего месяца
func PrevMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month()-1, 1, 0, 0, 0, 0, ref.Location())
}

// Midnight обнуляет время, оставляя только дату
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay сравнивает два момента по календарному дню
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
