// Package quiz реализует прохождение квиза с обратным отсчётом времени.
package quiz

import (
	"sync"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/catalog"
	"github.com/Freeeeeet/golf_lessons/internal/model"
	"go.uber.org/zap"
)

const unanswered = -1

// Engine ведёт одно прохождение квиза: текущий вопрос, выбранные ответы
// и секундный обратный отсчёт. Истечение времени завершает квиз так же,
// как ответ на последний вопрос.
type Engine struct {
	mu        sync.Mutex
	quiz      model.Quiz
	questions []model.QuizQuestion
	current   int
	answers   []int
	timeLeft  int // секунды
	started   bool
	finished  bool
	stop      chan struct{}

	logger *zap.Logger
}

// NewEngine создаёт движок без активного квиза
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger}
}

// Start начинает прохождение квиза и запускает обратный отсчёт.
// Возвращает false если квиз не найден или прохождение уже идёт.
func (e *Engine) Start(quizID int64) bool {
	q, ok := catalog.QuizByID(quizID)
	if !ok {
		return false
	}

	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return false
	}

	e.quiz = q
	e.questions = catalog.QuizQuestions(quizID)
	e.current = 0
	e.answers = make([]int, len(e.questions))
	for i := range e.answers {
		e.answers[i] = unanswered
	}
	e.timeLeft = q.TimeLimit * 60
	e.started = true
	e.finished = false
	e.stop = make(chan struct{})
	stop := e.stop
	e.mu.Unlock()

	e.logger.Info("Quiz started",
		zap.Int64("quiz_id", quizID),
		zap.String("title", q.Title),
		zap.Int("time_limit_min", q.TimeLimit),
	)

	go e.countdown(stop)
	return true
}

// countdown тикает раз в секунду до остановки или истечения времени
func (e *Engine) countdown(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !e.Tick() {
				return
			}
		}
	}
}

// Tick списывает одну секунду. На нуле квиз завершается.
// Возвращает false когда отсчёт больше не идёт.
func (e *Engine) Tick() bool {
	e.mu.Lock()

	if !e.started || e.finished {
		e.mu.Unlock()
		return false
	}

	e.timeLeft--
	if e.timeLeft > 0 {
		e.mu.Unlock()
		return true
	}

	e.timeLeft = 0
	e.finishLocked()
	e.mu.Unlock()
	return false
}

// SelectAnswer записывает ответ на текущий вопрос.
// Повторный выбор перезаписывает предыдущий ответ.
func (e *Engine) SelectAnswer(option int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || e.finished {
		return
	}
	if option < 0 || option >= len(e.questions[e.current].Options) {
		return
	}
	e.answers[e.current] = option
}

// NextQuestion переходит к следующему вопросу, с последнего завершает квиз
func (e *Engine) NextQuestion() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started || e.finished {
		return
	}
	if e.current < len(e.questions)-1 {
		e.current++
		return
	}
	e.finishLocked()
}

// finishLocked завершает прохождение. Вызывается под мьютексом.
func (e *Engine) finishLocked() {
	e.finished = true
	e.started = false
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}

	e.logger.Info("Quiz finished",
		zap.Int64("quiz_id", e.quiz.ID),
		zap.Int("score", e.scoreLocked()),
	)
}

// Abandon прерывает прохождение без результатов
func (e *Engine) Abandon() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	e.started = false
	e.finished = false
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
}

// Score возвращает результат в процентах: round(верных / всего × 100)
func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scoreLocked()
}

func (e *Engine) scoreLocked() int {
	if len(e.questions) == 0 {
		return 0
	}

	correct := 0
	for i, answer := range e.answers {
		if answer == e.questions[i].Correct {
			correct++
		}
	}
	// Округление к ближайшему целому проценту
	return (correct*100 + len(e.questions)/2) / len(e.questions)
}

// CurrentQuestion возвращает текущий вопрос и его номер (с нуля)
func (e *Engine) CurrentQuestion() (model.QuizQuestion, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.questions) == 0 {
		return model.QuizQuestion{}, 0
	}
	return e.questions[e.current], e.current
}

// TimeLeft возвращает остаток времени в секундах
func (e *Engine) TimeLeft() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeLeft
}

// Finished сообщает, завершён ли квиз
func (e *Engine) Finished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finished
}
