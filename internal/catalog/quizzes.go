package catalog

import "github.com/Freeeeeet/golf_lessons/internal/model"

var quizzes = []model.Quiz{
	{
		ID:          1,
		Title:       "Golf Rules & Etiquette",
		Description: "Test your knowledge of basic golf rules and course etiquette",
		Questions:   15,
		TimeLimit:   20,
		Difficulty:  "Beginner",
		Points:      100,
	},
	{
		ID:          2,
		Title:       "Course Management",
		Description: "Strategic thinking and shot selection on the golf course",
		Questions:   12,
		TimeLimit:   15,
		Difficulty:  "Intermediate",
		Points:      150,
	},
	{
		ID:          3,
		Title:       "Advanced Swing Mechanics",
		Description: "Technical aspects of the golf swing and ball flight laws",
		Questions:   20,
		TimeLimit:   25,
		Difficulty:  "Advanced",
		Points:      200,
	},
}

// Во всех квизах пока один и тот же набор вопросов-примеров,
// как в исходной версии платформы.
var sampleQuestions = []model.QuizQuestion{
	{
		Question:    "What is the maximum number of clubs allowed in a golf bag during a round?",
		Options:     []string{"12", "14", "16", "18"},
		Correct:     1,
		Explanation: "According to golf rules, players are allowed a maximum of 14 clubs in their bag during a round.",
	},
	{
		Question:    "When should you repair divots on the fairway?",
		Options:     []string{"Never", "Only if they're deep", "Always", "Only on par 3s"},
		Correct:     2,
		Explanation: "You should always repair divots on the fairway to maintain course condition for other players.",
	},
	{
		Question:    "What does 'par' represent on a golf hole?",
		Options:     []string{"The minimum score", "The expected score for a skilled golfer", "The maximum score", "The average score"},
		Correct:     1,
		Explanation: "Par represents the expected number of strokes for a skilled golfer to complete the hole.",
	},
}

// Quizzes возвращает все квизы
func Quizzes() []model.Quiz {
	return quizzes
}

// QuizByID ищет квиз по ID
func QuizByID(id int64) (model.Quiz, bool) {
	for _, q := range quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return model.Quiz{}, false
}

// QuizQuestions возвращает вопросы квиза
func QuizQuestions(quizID int64) []model.QuizQuestion {
	return sampleQuestions
}
