// Package store содержит единственный источник правды о бронированиях
// в рамках сессии. Хранилище живёт в памяти, между сессиями ничего не
// сохраняется: при перезапуске состав возвращается к начальному.
package store

import (
	"sync"

	"github.com/Freeeeeet/golf_lessons/internal/model"
)

// BookingStore хранит упорядоченную коллекцию бронирований и оповещает
// подписчиков о каждой мутации. Порядок вставки сохраняется, неявной
// сортировки нет - сортируют читатели.
type BookingStore struct {
	mu          sync.RWMutex
	bookings    []model.Booking
	subscribers map[int64]func()
	nextSubID   int64
}

// NewBookingStore создаёт пустое хранилище
func NewBookingStore() *BookingStore {
	return &BookingStore{
		subscribers: make(map[int64]func()),
	}
}

// Add добавляет полностью собранное бронирование в конец коллекции.
// Валидации на этом уровне нет - вызывающие обязаны провалидировать
// данные до сохранения.
func (s *BookingStore) Add(booking model.Booking) {
	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()

	s.notify()
}

// Update мерджит заполненные поля патча в бронирование с данным ID.
// Если бронирование не найдено, молча ничего не делает и возвращает false.
func (s *BookingStore) Update(id string, patch model.BookingPatch) bool {
	s.mu.Lock()
	found := false
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		applyPatch(&s.bookings[i], patch)
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
	return found
}

// Cancel переводит бронирование в статус cancelled. Повторная отмена
// оставляет статус cancelled (идемпотентно). Возвращает false если
// бронирование не найдено.
func (s *BookingStore) Cancel(id string) bool {
	status := model.BookingStatusCancelled
	return s.Update(id, model.BookingPatch{Status: &status})
}

// Get возвращает копию бронирования по ID
func (s *BookingStore) Get(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// List возвращает снапшот всех бронирований в порядке вставки
func (s *BookingStore) List() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Возвращаем копию, чтобы избежать race condition
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Len возвращает число бронирований в хранилище
func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// Subscribe регистрирует колбэк, вызываемый после каждой мутации.
// Возвращает функцию отписки.
func (s *BookingStore) Subscribe(fn func()) func() {
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

func (s *BookingStore) notify() {
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

func applyPatch(b *model.Booking, patch model.BookingPatch) {
	if patch.Date != nil {
		b.Date = *patch.Date
	}
	if patch.TimeLabel != nil {
		b.TimeLabel = *patch.TimeLabel
	}
	if patch.Duration != nil {
		b.Duration = *patch.Duration
	}
	if patch.AdditionalNotes != nil {
		b.AdditionalNotes = *patch.AdditionalNotes
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.Meeting != nil {
		b.Meeting = *patch.Meeting
	}
}
