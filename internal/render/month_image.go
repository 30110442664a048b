// Package render рисует месячную сетку календаря с отметками уроков в PNG.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
	"github.com/Freeeeeet/golf_lessons/internal/timegrid"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth     = 1120
	headerHeight   = 70
	weekdayRowH    = 36
	cellWidth      = imageWidth / 7
	cellHeight     = 120
	cellPadding    = 6
	bookingBarH    = 22
	maxBarsPerCell = 3
	cornerRadius   = 6.0
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	headerTextColor = color.RGBA{40, 44, 48, 255}
	weekdayColor    = color.RGBA{110, 115, 120, 255}
	gridLineColor   = color.NRGBA{210, 212, 215, 255}
	dayNumberColor  = color.RGBA{80, 85, 90, 255}
	emptyCellColor  = color.NRGBA{236, 237, 239, 255}
	todayBgColor    = color.NRGBA{209, 250, 229, 255}
	bookingBgColor  = color.RGBA{5, 150, 105, 230}
	bookingTxtColor = color.RGBA{255, 255, 255, 255}
	overflowColor   = color.RGBA{120, 125, 130, 255}
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthImage рисует сетку месяца, в который попадает ref, отмечая в ячейках
// предстоящие уроки. Сетка повторяет модель страницы календаря: пустые
// ячейки до 1-го числа, хвост последней строки остаётся незаполненным.
func MonthImage(ref time.Time, bookings []model.Booking, now time.Time) ([]byte, error) {
	grid := timegrid.MonthGrid(ref)
	rows := (len(grid) + 6) / 7

	height := headerHeight + weekdayRowH + rows*cellHeight
	dc := gg.NewContext(imageWidth, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	// Заголовок: месяц и год
	dc.SetColor(headerTextColor)
	title := fmt.Sprintf("%s %d", ref.Month().String(), ref.Year())
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)

	// Строка дней недели
	dc.SetColor(weekdayColor)
	for i, name := range weekdayNames {
		x := float64(i*cellWidth) + float64(cellWidth)/2
		dc.DrawStringAnchored(name, x, headerHeight+weekdayRowH/2, 0.5, 0.5)
	}

	for i, day := range grid {
		col := i % 7
		row := i / 7
		x := float64(col * cellWidth)
		y := float64(headerHeight + weekdayRowH + row*cellHeight)

		if day == nil {
			dc.SetColor(emptyCellColor)
			dc.DrawRectangle(x, y, cellWidth, cellHeight)
			dc.Fill()
			continue
		}

		if timegrid.SameDay(*day, now) {
			dc.SetColor(todayBgColor)
			dc.DrawRectangle(x, y, cellWidth, cellHeight)
			dc.Fill()
		}

		dc.SetColor(dayNumberColor)
		dc.DrawString(fmt.Sprintf("%d", day.Day()), x+cellPadding, y+16)

		drawDayBookings(dc, bookings, *day, x, y)
	}

	// Линии сетки поверх ячеек
	dc.SetColor(gridLineColor)
	dc.SetLineWidth(1)
	for c := 0; c <= 7; c++ {
		x := float64(c * cellWidth)
		dc.DrawLine(x, headerHeight+weekdayRowH, x, float64(height))
		dc.Stroke()
	}
	for r := 0; r <= rows; r++ {
		y := float64(headerHeight + weekdayRowH + r*cellHeight)
		dc.DrawLine(0, y, imageWidth, y)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode month image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawDayBookings рисует плашки предстоящих уроков внутри ячейки дня.
// Помещаются первые три, остальные сворачиваются в счётчик.
func drawDayBookings(dc *gg.Context, bookings []model.Booking, day time.Time, x, y float64) {
	var dayBookings []model.Booking
	for _, b := range bookings {
		if b.Status == model.BookingStatusUpcoming && timegrid.SameDay(b.Date, day) {
			dayBookings = append(dayBookings, b)
		}
	}

	barY := y + 24
	shown := len(dayBookings)
	if shown > maxBarsPerCell {
		shown = maxBarsPerCell
	}

	for i := 0; i < shown; i++ {
		b := dayBookings[i]
		dc.SetColor(bookingBgColor)
		dc.DrawRoundedRectangle(x+cellPadding, barY, cellWidth-2*cellPadding, bookingBarH, cornerRadius)
		dc.Fill()

		label := fmt.Sprintf("%s %s", b.TimeLabel, b.InstructorName)
		dc.SetColor(bookingTxtColor)
		dc.DrawString(truncate(label, 20), x+cellPadding+4, barY+15)

		barY += bookingBarH + 4
	}

	if len(dayBookings) > maxBarsPerCell {
		dc.SetColor(overflowColor)
		dc.DrawString(fmt.Sprintf("+%d more", len(dayBookings)-maxBarsPerCell), x+cellPadding+4, barY+12)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
