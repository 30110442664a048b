package store

import (
	"testing"
	"time"

	"github.com/Freeeeeet/golf_lessons/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking(id string) model.Booking {
	return model.Booking{
		ID:             id,
		InstructorName: "Mike Johnson",
		LessonType:     "Private Lesson",
		Date:           time.Date(2026, time.April, 15, 9, 0, 0, 0, time.UTC),
		TimeLabel:      "9:00 AM",
		Price:          120,
		Status:         model.BookingStatusUpcoming,
	}
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := NewBookingStore()
	s.Add(testBooking("b"))
	s.Add(testBooking("a"))
	s.Add(testBooking("c"))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
	assert.Equal(t, "c", list[2].ID)
}

func TestUpdate_MergesPatchFields(t *testing.T) {
	s := NewBookingStore()
	s.Add(testBooking("1"))

	notes := "Bring the new driver"
	ok := s.Update("1", model.BookingPatch{AdditionalNotes: &notes})

	require.True(t, ok)
	b, found := s.Get("1")
	require.True(t, found)
	assert.Equal(t, "Bring the new driver", b.AdditionalNotes)
	// Остальные поля не тронуты
	assert.Equal(t, "Mike Johnson", b.InstructorName)
	assert.Equal(t, 120, b.Price)
}

func TestUpdate_UnknownIDIsSilentNoop(t *testing.T) {
	s := NewBookingStore()
	s.Add(testBooking("1"))
	before := s.List()

	notes := "whatever"
	ok := s.Update("no-such-id", model.BookingPatch{AdditionalNotes: &notes})

	assert.False(t, ok)
	assert.Equal(t, before, s.List())
}

func TestCancel_SetsStatusAndIsIdempotent(t *testing.T) {
	s := NewBookingStore()
	s.Add(testBooking("1"))

	require.True(t, s.Cancel("1"))
	b, _ := s.Get("1")
	assert.Equal(t, model.BookingStatusCancelled, b.Status)

	// Повторная отмена не паникует и оставляет статус cancelled
	require.True(t, s.Cancel("1"))
	b, _ = s.Get("1")
	assert.Equal(t, model.BookingStatusCancelled, b.Status)
}

func TestCancel_UnknownID(t *testing.T) {
	s := NewBookingStore()
	assert.False(t, s.Cancel("ghost"))
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	s := NewBookingStore()

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.Add(testBooking("1"))
	s.Cancel("1")
	assert.Equal(t, 2, calls)

	// Неудачный Update подписчиков не дёргает
	notes := "x"
	s.Update("ghost", model.BookingPatch{AdditionalNotes: &notes})
	assert.Equal(t, 2, calls)

	unsubscribe()
	s.Add(testBooking("2"))
	assert.Equal(t, 2, calls)
}

func TestList_ReturnsSnapshotCopy(t *testing.T) {
	s := NewBookingStore()
	s.Add(testBooking("1"))

	list := s.List()
	list[0].InstructorName = "mutated"

	b, _ := s.Get("1")
	assert.Equal(t, "Mike Johnson", b.InstructorName)
}

func TestSeeded_InitialContents(t *testing.T) {
	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)
	s := Seeded(now)

	list := s.List()
	require.Len(t, list, 3)

	assert.Equal(t, model.BookingStatusUpcoming, list[0].Status)
	assert.Equal(t, model.BookingStatusUpcoming, list[1].Status)
	assert.Equal(t, model.BookingStatusCompleted, list[2].Status)

	// Предстоящие уроки в будущем, завершённый в прошлом
	assert.True(t, list[0].Date.After(now))
	assert.True(t, list[2].Date.Before(now))
}
