package model

import "time"

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
	PlanPro     Plan = "pro"
)

type User struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Plan                Plan       `json:"plan"`
	TrialEndsAt         *time.Time `json:"trial_ends_at,omitempty"` // указатель - триала может не быть
	Phone               string     `json:"phone,omitempty"`
	Location            string     `json:"location,omitempty"`
	Bio                 string     `json:"bio,omitempty"`
	Handicap            string     `json:"handicap,omitempty"`
	ProfilePicture      string     `json:"profile_picture,omitempty"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
}
