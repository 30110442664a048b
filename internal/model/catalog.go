package model

// Instructor - преподаватель из статического справочника.
// Availability - это времена суток, одинаковые для любой даты (календарной
// привязки у доступности нет, это известное упрощение).
type Instructor struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Specialties  []string `json:"specialties"`
	BaseRate     int      `json:"base_rate"` // Базовая цена за час, без валюты
	Image        string   `json:"image"`
	Availability []string `json:"availability"`
}

type LessonType struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

type Duration struct {
	ID         string  `json:"id"` // длительность в минутах строкой: "30", "60", ...
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type SkillLevel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlanInfo struct {
	ID          Plan     `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Popular     bool     `json:"popular,omitempty"`
	Features    []string `json:"features"`
	Limitations []string `json:"limitations,omitempty"`
}

type Course struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Instructor string  `json:"instructor"`
	Duration   string  `json:"duration"`
	Lessons    int     `json:"lessons"`
	Level      string  `json:"level"`
	Rating     float64 `json:"rating"`
	Students   int     `json:"students"`
	Image      string  `json:"image"`
	Preview    bool    `json:"preview"`
	Premium    bool    `json:"premium"`
}

type Quiz struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Questions   int    `json:"questions"`
	TimeLimit   int    `json:"time_limit"` // минуты
	Difficulty  string `json:"difficulty"`
	Points      int    `json:"points"`
}

type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"` // индекс правильного варианта
	Explanation string   `json:"explanation"`
}
