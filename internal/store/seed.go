package store

import (
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
)

// Seeded создаёт хранилище с демонстрационным набором бронирований,
// как при первом открытии страницы. Даты отсчитываются от now, чтобы
// набор не устаревал: два предстоящих урока и один завершённый.
func Seeded(now time.Time) *BookingStore {
	s := NewBookingStore()

	day := func(offset, hour int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
	}

	s.Add(model.Booking{
		ID:              "1",
		InstructorName:  "Mike Johnson",
		InstructorImage: "https://images.pexels.com/photos/1300402/pexels-photo-1300402.jpeg?auto=compress&cs=tinysrgb&w=200",
		LessonType:      "Private Lesson",
		Date:            day(5, 9),
		TimeLabel:       "9:00 AM",
		Duration:        "1 hour",
		SkillLevel:      "Intermediate",
		FocusAreas:      []string{"Putting", "Short Game"},
		AdditionalNotes: "Working on consistency with short putts",
		Price:           120,
		Status:          model.BookingStatusUpcoming,
		Meeting: model.MeetingDetails{
			Link:     "https://zoom.us/j/1234567890?pwd=abc123",
			ID:       "123 456 7890",
			Password: "golf2025",
		},
	})

	s.Add(model.Booking{
		ID:              "2",
		InstructorName:  "Sarah Wilson",
		InstructorImage: "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=200",
		LessonType:      "Playing Lesson",
		Date:            day(8, 14),
		TimeLabel:       "2:00 PM",
		Duration:        "2 hours",
		SkillLevel:      "Advanced",
		FocusAreas:      []string{"Course Management", "Iron Play", "Mental Game"},
		Price:           450,
		Status:          model.BookingStatusUpcoming,
		Meeting: model.MeetingDetails{
			Link:     "https://zoom.us/j/9876543210?pwd=xyz789",
			ID:       "987 654 3210",
			Password: "proGolf99",
		},
	})

	s.Add(model.Booking{
		ID:              "3",
		InstructorName:  "David Chen",
		InstructorImage: "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg?auto=compress&cs=tinysrgb&w=200",
		LessonType:      "Private Lesson",
		Date:            day(-7, 10),
		TimeLabel:       "10:00 AM",
		Duration:        "1.5 hours",
		SkillLevel:      "Beginner",
		FocusAreas:      []string{"Full Swing", "Driving"},
		Price:           270,
		Status:          model.BookingStatusCompleted,
		Meeting: model.MeetingDetails{
			Link:     "https://zoom.us/j/5555555555?pwd=def456",
			ID:       "555 555 5555",
			Password: "swing123",
		},
	})

	return s
}
