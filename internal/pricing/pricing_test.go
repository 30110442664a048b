package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	// Базовая ставка $120, игровой урок ×1.5, два часа ×2
	assert.Equal(t, 360, Calculate(120, 1.5, 2))

	// Округление к ближайшему целому
	assert.Equal(t, 126, Calculate(120, 0.7, 1.5)) // 126.0
	assert.Equal(t, 53, Calculate(150, 0.7, 0.5))  // 52.5 -> 53
}

func TestForSelection(t *testing.T) {
	// Mike Johnson: базовая ставка 120
	assert.Equal(t, 360, ForSelection(1, "playing", "120"))
	assert.Equal(t, 120, ForSelection(1, "private", "60"))
}

func TestForSelection_UnknownInstructor(t *testing.T) {
	assert.Equal(t, 0, ForSelection(999, "private", "60"))
}

func TestForSelection_MultiplierFallsBackToOne(t *testing.T) {
	// Промах по справочнику типа урока или длительности даёт множитель 1,
	// а не ошибку
	assert.Equal(t, 120, ForSelection(1, "no-such-type", "60"))
	assert.Equal(t, 180, ForSelection(1, "playing", "no-such-duration"))
	assert.Equal(t, 120, ForSelection(1, "no-such-type", "no-such-duration"))
}
