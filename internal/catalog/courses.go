package catalog

import (
	"strings"

	"github.com/Freeeeeet/golf_lessons/internal/model"
)

var courses = []model.Course{
	{
		ID:         1,
		Title:      "Perfect Putting Fundamentals",
		Instructor: "Mike Johnson",
		Duration:   "2h 30m",
		Lessons:    12,
		Level:      "Beginner",
		Rating:     4.9,
		Students:   2340,
		Image:      "https://images.pexels.com/photos/1325735/pexels-photo-1325735.jpeg?auto=compress&cs=tinysrgb&w=400",
		Preview:    true,
		Premium:    false,
	},
	{
		ID:         2,
		Title:      "Advanced Driving Techniques",
		Instructor: "Sarah Wilson",
		Duration:   "4h 15m",
		Lessons:    18,
		Level:      "Advanced",
		Rating:     4.8,
		Students:   1890,
		Image:      "https://images.unsplash.com/photo-1587174486073-ae5e5cff23aa?w=400&h=300&fit=crop",
		Preview:    false,
		Premium:    true,
	},
	{
		ID:         3,
		Title:      "Course Management Strategy",
		Instructor: "David Chen",
		Duration:   "3h 45m",
		Lessons:    15,
		Level:      "Intermediate",
		Rating:     4.9,
		Students:   3200,
		Image:      "https://images.pexels.com/photos/1325659/pexels-photo-1325659.jpeg?auto=compress&cs=tinysrgb&w=400",
		Preview:    false,
		Premium:    true,
	},
	{
		ID:         4,
		Title:      "Short Game Mastery",
		Instructor: "Lisa Martinez",
		Duration:   "3h 20m",
		Lessons:    14,
		Level:      "Intermediate",
		Rating:     4.7,
		Students:   2100,
		Image:      "https://images.pexels.com/photos/1325766/pexels-photo-1325766.jpeg?auto=compress&cs=tinysrgb&w=400",
		Preview:    true,
		Premium:    false,
	},
	{
		ID:         5,
		Title:      "Mental Game & Focus",
		Instructor: "Dr. Robert Kim",
		Duration:   "2h 15m",
		Lessons:    10,
		Level:      "All Levels",
		Rating:     4.8,
		Students:   2890,
		Image:      "https://images.pexels.com/photos/1325735/pexels-photo-1325735.jpeg?auto=compress&cs=tinysrgb&w=400",
		Preview:    false,
		Premium:    true,
	},
	{
		ID:         6,
		Title:      "Bunker Play Essentials",
		Instructor: "Tom Anderson",
		Duration:   "1h 45m",
		Lessons:    8,
		Level:      "Beginner",
		Rating:     4.6,
		Students:   1650,
		Image:      "https://images.pexels.com/photos/1325659/pexels-photo-1325659.jpeg?auto=compress&cs=tinysrgb&w=400",
		Preview:    true,
		Premium:    false,
	},
}

// Courses возвращает весь каталог курсов
func Courses() []model.Course {
	return courses
}

// CourseByID ищет курс по ID
func CourseByID(id int64) (model.Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// FilterCourses фильтрует каталог по поисковой строке и уровню.
// Уровень "All" отключает фильтр по уровню, как на странице курсов.
func FilterCourses(search, level string) []model.Course {
	var out []model.Course
	for _, c := range courses {
		if search != "" {
			q := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(c.Title), q) &&
				!strings.Contains(strings.ToLower(c.Instructor), q) {
				continue
			}
		}
		if level != "" && level != "All" && c.Level != level {
			continue
		}
		out = append(out, c)
	}
	return out
}
