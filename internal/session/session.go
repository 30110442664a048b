// Package session содержит провайдер аутентификации и подписки.
// Провайдер полностью in-memory: любые email и пароль принимаются,
// реальной проверки учётных данных нет.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
	"go.uber.org/zap"
)

const defaultProfilePicture = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=200"

const trialDuration = 7 * 24 * time.Hour

// Session хранит текущего пользователя сессии и оповещает подписчиков
// о каждом изменении, как и хранилище бронирований.
type Session struct {
	mu          sync.RWMutex
	user        *model.User
	subscribers map[int64]func()
	nextSubID   int64
	logger      *zap.Logger
}

// New создаёт пустую сессию (пользователь не залогинен)
func New(logger *zap.Logger) *Session {
	return &Session{
		subscribers: make(map[int64]func()),
		logger:      logger,
	}
}

// Current возвращает копию текущего пользователя или nil
func (s *Session) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login входит с любыми учётными данными. Имя пользователя выводится из
// локальной части email: "john.doe@x.com" -> "John Doe". Пароль не
// проверяется.
func (s *Session) Login(email, _ string) *model.User {
	user := &model.User{
		ID:             email,
		Name:           nameFromEmail(email),
		Email:          email,
		Plan:           model.PlanFree,
		ProfilePicture: defaultProfilePicture,
	}

	s.setUser(user)

	s.logger.Info("User logged in",
		zap.String("email", email),
		zap.String("name", user.Name),
	)

	return s.Current()
}

// Register создаёт пользователя с указанным именем
func (s *Session) Register(name, email, _ string) *model.User {
	user := &model.User{
		ID:             email,
		Name:           name,
		Email:          email,
		Plan:           model.PlanFree,
		ProfilePicture: defaultProfilePicture,
	}

	s.setUser(user)

	s.logger.Info("User registered",
		zap.String("email", email),
		zap.String("name", name),
	)

	return s.Current()
}

// Logout завершает сессию
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.logger.Info("User logged out")
	s.notify()
}

// StartFreeTrial запускает 7-дневный пробный период.
// Ничего не делает если пользователь не залогинен.
func (s *Session) StartFreeTrial() {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	ends := time.Now().Add(trialDuration)
	s.user.TrialEndsAt = &ends
	s.mu.Unlock()

	s.logger.Info("Free trial started", zap.Time("ends_at", ends))
	s.notify()
}

// UpgradePlan переводит пользователя на платный тариф. Переход на free
// этим путём не выполняется, как и на странице подписки.
func (s *Session) UpgradePlan(plan model.Plan) {
	if plan == model.PlanFree {
		return
	}

	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user.Plan = plan
	s.mu.Unlock()

	s.logger.Info("Plan upgraded", zap.String("plan", string(plan)))
	s.notify()
}

// Subscribe регистрирует колбэк на изменения сессии.
// Возвращает функцию отписки.
func (s *Session) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Session) setUser(user *model.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.notify()
}

func (s *Session) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// nameFromEmail выводит отображаемое имя из локальной части email.
// Разделители ".", "_" и "-" дают части имени, первые две части
// становятся именем и фамилией с заглавной буквы.
func nameFromEmail(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})

	first := ""
	if len(parts) > 0 {
		first = titleCase(parts[0])
	}

	last := ""
	if len(parts) > 1 {
		last = titleCase(parts[1])
	}

	if last != "" {
		return first + " " + last
	}
	return first
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
