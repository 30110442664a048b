package session

import "go.uber.org/zap"

// ProfileUpdate описывает частичное обновление профиля из редактора.
// nil-поля не трогаются.
type ProfileUpdate struct {
	Name           *string
	Phone          *string
	Location       *string
	Bio            *string
	Handicap       *string
	ProfilePicture *string
}

// UpdateProfile применяет изменения из редактора профиля.
// Возвращает false если пользователь не залогинен.
func (s *Session) UpdateProfile(update ProfileUpdate) bool {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return false
	}

	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Phone != nil {
		s.user.Phone = *update.Phone
	}
	if update.Location != nil {
		s.user.Location = *update.Location
	}
	if update.Bio != nil {
		s.user.Bio = *update.Bio
	}
	if update.Handicap != nil {
		s.user.Handicap = *update.Handicap
	}
	if update.ProfilePicture != nil {
		s.user.ProfilePicture = *update.ProfilePicture
	}
	s.mu.Unlock()

	s.logger.Info("Profile updated")
	s.notify()
	return true
}

// CompleteOnboarding помечает онбординг пройденным
func (s *Session) CompleteOnboarding() {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user.OnboardingCompleted = true
	s.mu.Unlock()

	s.logger.Info("Onboarding completed", zap.String("email", s.userEmailLocked()))
	s.notify()
}

func (s *Session) userEmailLocked() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Email
}
