package model

import "time"

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"  // Предстоящий урок
	BookingStatusCompleted BookingStatus = "completed" // Завершён
	BookingStatusCancelled BookingStatus = "cancelled" // Отменён учеником
)

// MeetingDetails содержит реквизиты виртуальной встречи для онлайн-урока.
// Генерируются mock-генератором, реальной интеграции с Zoom нет.
type MeetingDetails struct {
	Link     string `json:"link,omitempty"`
	ID       string `json:"id,omitempty"`
	Password string `json:"password,omitempty"`
}

type Booking struct {
	ID              string         `json:"id"`
	InstructorName  string         `json:"instructor_name"` // Денормализованная копия, не внешний ключ
	InstructorImage string         `json:"instructor_image"`
	LessonType      string         `json:"lesson_type"`
	Date            time.Time      `json:"date"` // Дата и время начала урока одним значением
	TimeLabel       string         `json:"time_label"`
	Duration        string         `json:"duration"`
	SkillLevel      string         `json:"skill_level"`
	FocusAreas      []string       `json:"focus_areas"`
	AdditionalNotes string         `json:"additional_notes,omitempty"`
	Price           int            `json:"price"` // Итоговая цена, считается только калькулятором
	Status          BookingStatus  `json:"status"`
	Meeting         MeetingDetails `json:"meeting,omitempty"`
}

// BookingPatch описывает частичное обновление бронирования.
// nil-поля не трогаются при мердже.
type BookingPatch struct {
	Date            *time.Time
	TimeLabel       *string
	Duration        *string
	AdditionalNotes *string
	Status          *BookingStatus
	Meeting         *MeetingDetails
}
