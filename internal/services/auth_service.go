package services

import (
	"fmt"
	"sync"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"
)

// AuthService holds the single in-process session for the dashboard:
// either anonymous (no current user) or authenticated. Admin identities
// come from a static list supplied at construction; staff identities are
// resolved dynamically against the staff repository at login time.
//
// Passwords are compared with plain equality. This mirrors the system
// being replaced and is a documented gap, not an accident.
type AuthService struct {
	staffRepo repositories.StaffRepository
	notifier  Notifier
	admins    []models.User

	mu      sync.RWMutex
	current *models.User
}

// NewAuthService creates a new AuthService.
func NewAuthService(staffRepo repositories.StaffRepository, notifier Notifier, admins []models.User) *AuthService {
	return &AuthService{
		staffRepo: staffRepo,
		notifier:  notifier,
		admins:    admins,
	}
}

// Login resolves the credentials against the static admin list first,
// then against the staff repository. On success the session transitions
// to authenticated and true is returned; on failure the session is left
// unchanged, an error notification is emitted and false is returned.
func (s *AuthService) Login(email, password string) bool {
	for i := range s.admins {
		if s.admins[i].Email == email && s.admins[i].Password == password {
			user := s.admins[i]
			s.mu.Lock()
			s.current = &user
			s.mu.Unlock()
			return true
		}
	}

	staff, err := s.staffRepo.GetByEmail(email)
	if err == nil && staff.Password == password {
		// Staff records carry no role of their own; logins resolved
		// through the staff list are always role "staff".
		user := models.User{
			ID:    staff.ID,
			Email: staff.Email,
			Role:  models.RoleStaff,
			Name:  staff.Name,
		}
		s.mu.Lock()
		s.current = &user
		s.mu.Unlock()
		return true
	}

	s.notifier.Notify("Login Failed", fmt.Sprintf("Invalid credentials for %s", email), models.NotificationError)
	return false
}

// Logout unconditionally transitions the session back to anonymous.
func (s *AuthService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
}

// CurrentUser returns a copy of the authenticated identity, or nil when
// the session is anonymous.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}
