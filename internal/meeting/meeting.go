// Package meeting генерирует реквизиты виртуальной встречи для онлайн-урока.
// Generator вынесен в интерфейс, чтобы mock-реализацию можно было заменить
// реальной интеграцией с видеосервисом, не трогая мастер записи.
package meeting

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Freeeeeet/golf_lessons/internal/model"
)

// Generator создаёт реквизиты встречи для нового бронирования
type Generator interface {
	Generate() model.MeetingDetails
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// MockGenerator выдаёт правдоподобные, но фиктивные реквизиты:
// девятизначный ID встречи и восьмисимвольный пароль.
type MockGenerator struct {
	baseURL string
	rng     *rand.Rand
}

// NewMockGenerator создаёт генератор. baseURL - основа ссылки на встречу,
// например "https://zoom.us". Источник случайности передаётся снаружи,
// чтобы тесты могли зафиксировать seed.
func NewMockGenerator(baseURL string, rng *rand.Rand) *MockGenerator {
	return &MockGenerator{baseURL: baseURL, rng: rng}
}

// Generate создаёт новые реквизиты встречи.
// ID - 9 случайных цифр, в отображении сгруппированных по три.
func (g *MockGenerator) Generate() model.MeetingDetails {
	digits := fmt.Sprintf("%09d", 100000000+g.rng.Intn(900000000))
	password := g.randomPassword(8)

	return model.MeetingDetails{
		Link:     fmt.Sprintf("%s/j/%s?pwd=%s", g.baseURL, digits, password),
		ID:       groupDigits(digits),
		Password: password,
	}
}

func (g *MockGenerator) randomPassword(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteByte(passwordAlphabet[g.rng.Intn(len(passwordAlphabet))])
	}
	return sb.String()
}

// groupDigits разбивает строку цифр на группы по три через пробел:
// "123456789" -> "123 456 789"
func groupDigits(digits string) string {
	var groups []string
	for i := 0; i < len(digits); i += 3 {
		end := i + 3
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}
