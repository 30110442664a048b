// Package catalog содержит статические справочники платформы: преподаватели,
// типы уроков, длительности, уровни подготовки, направления тренировок.
// Справочники не редактируются пользователем и живут в коде.
package catalog

import "github.com/Freeeeeet/golf_lessons/internal/model"

var lessonTypes = []model.LessonType{
	{ID: "private", Name: "Private Lesson", Description: "1-on-1 personalized instruction", PriceMultiplier: 1},
	{ID: "semi-private", Name: "Semi-Private", Description: "Small group (2-3 people)", PriceMultiplier: 0.7},
	{ID: "group", Name: "Group Lesson", Description: "Group of 4-6 people", PriceMultiplier: 0.5},
	{ID: "playing", Name: "Playing Lesson", Description: "On-course instruction", PriceMultiplier: 1.5},
}

var durations = []model.Duration{
	{ID: "30", Name: "30 minutes", Multiplier: 0.5},
	{ID: "60", Name: "1 hour", Multiplier: 1},
	{ID: "90", Name: "1.5 hours", Multiplier: 1.5},
	{ID: "120", Name: "2 hours", Multiplier: 2},
}

var skillLevels = []model.SkillLevel{
	{ID: "beginner", Name: "Beginner", Description: "New to golf or just starting out"},
	{ID: "intermediate", Name: "Intermediate", Description: "Have basic skills, looking to improve"},
	{ID: "advanced", Name: "Advanced", Description: "Experienced player seeking refinement"},
	{ID: "expert", Name: "Expert", Description: "Competitive player or low handicap"},
}

var focusAreas = []string{
	"Full Swing",
	"Putting",
	"Short Game",
	"Driving",
	"Iron Play",
	"Bunker Play",
	"Course Management",
	"Mental Game",
	"Fitness & Conditioning",
	"Club Fitting",
	"Tournament Prep",
	"Swing Analysis",
}

var instructors = []model.Instructor{
	{
		ID:           1,
		Name:         "Mike Johnson",
		Title:        "PGA Professional",
		Rating:       4.9,
		Reviews:      234,
		Specialties:  []string{"Putting", "Short Game", "Mental Game"},
		BaseRate:     120,
		Image:        "https://images.pexels.com/photos/1300402/pexels-photo-1300402.jpeg?auto=compress&cs=tinysrgb&w=200",
		Availability: []string{"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"},
	},
	{
		ID:           2,
		Name:         "Sarah Wilson",
		Title:        "LPGA Teaching Pro",
		Rating:       4.8,
		Reviews:      189,
		Specialties:  []string{"Driving", "Iron Play", "Course Strategy"},
		BaseRate:     150,
		Image:        "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=200",
		Availability: []string{"10:00 AM", "1:00 PM", "3:00 PM", "5:00 PM"},
	},
	{
		ID:           3,
		Name:         "David Chen",
		Title:        "Golf Performance Coach",
		Rating:       4.9,
		Reviews:      156,
		Specialties:  []string{"Swing Analysis", "Fitness", "Club Fitting"},
		BaseRate:     180,
		Image:        "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg?auto=compress&cs=tinysrgb&w=200",
		Availability: []string{"8:00 AM", "12:00 PM", "3:30 PM", "6:00 PM"},
	},
}

// LessonTypes возвращает все типы уроков
func LessonTypes() []model.LessonType {
	return lessonTypes
}

// Durations возвращает все варианты длительности
func Durations() []model.Duration {
	return durations
}

// SkillLevels возвращает все уровни подготовки
func SkillLevels() []model.SkillLevel {
	return skillLevels
}

// FocusAreas возвращает все направления тренировок
func FocusAreas() []string {
	return focusAreas
}

// Instructors возвращает всех преподавателей
func Instructors() []model.Instructor {
	return instructors
}

// LessonTypeByID ищет тип урока по ID
func LessonTypeByID(id string) (model.LessonType, bool) {
	for _, lt := range lessonTypes {
		if lt.ID == id {
			return lt, true
		}
	}
	return model.LessonType{}, false
}

// DurationByID ищет длительность по ID
func DurationByID(id string) (model.Duration, bool) {
	for _, d := range durations {
		if d.ID == id {
			return d, true
		}
	}
	return model.Duration{}, false
}

// SkillLevelByID ищет уровень подготовки по ID
func SkillLevelByID(id string) (model.SkillLevel, bool) {
	for _, sl := range skillLevels {
		if sl.ID == id {
			return sl, true
		}
	}
	return model.SkillLevel{}, false
}

// InstructorByID ищет преподавателя по ID
func InstructorByID(id int64) (model.Instructor, bool) {
	for _, ins := range instructors {
		if ins.ID == id {
			return ins, true
		}
	}
	return model.Instructor{}, false
}

// IsFocusArea проверяет что направление есть в справочнике
func IsFocusArea(area string) bool {
	for _, a := range focusAreas {
		if a == area {
			return true
		}
	}
	return false
}

// LessonTypeMultiplier возвращает ценовой множитель типа урока.
// Если тип не найден в справочнике, множитель равен 1 - это
// задокументированный fallback, а не ошибка.
func LessonTypeMultiplier(id string) float64 {
	if lt, ok := LessonTypeByID(id); ok {
		return lt.PriceMultiplier
	}
	return 1
}

// DurationMultiplier возвращает множитель длительности.
// Тот же fallback к 1 при промахе справочника.
func DurationMultiplier(id string) float64 {
	if d, ok := DurationByID(id); ok {
		return d.Multiplier
	}
	return 1
}
