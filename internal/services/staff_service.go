package services

import (
	"fmt"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"
)

// StaffService handles business logic related to staff members. Role
// enforcement (only admins may manage staff) lives in the middleware
// layer, not here.
type StaffService struct {
	repo     repositories.StaffRepository
	notifier Notifier
}

// NewStaffService creates a new StaffService.
func NewStaffService(repo repositories.StaffRepository, notifier Notifier) *StaffService {
	return &StaffService{
		repo:     repo,
		notifier: notifier,
	}
}

// GetAllStaff retrieves all staff members.
func (s *StaffService) GetAllStaff() ([]models.Staff, error) {
	return s.repo.GetAll()
}

// GetStaffByID retrieves a single staff member by ID.
func (s *StaffService) GetStaffByID(id string) (*models.Staff, error) {
	return s.repo.GetByID(id)
}

// CreateStaff creates a new staff member with a system-assigned identifier
// and creation timestamp.
func (s *StaffService) CreateStaff(input models.Staff) (*models.Staff, error) {
	input.ID = ""
	if err := s.repo.Create(&input); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	s.notifier.Notify("New Staff Added",
		fmt.Sprintf("%s has joined the team", input.Name),
		models.NotificationSuccess)
	return &input, nil
}

// UpdateStaff merges the non-nil fields of update over the stored record.
func (s *StaffService) UpdateStaff(id string, update models.StaffUpdate) (*models.Staff, error) {
	staff, err := s.repo.GetByID(id)
	if err != nil {
		s.notifier.Notify("Staff Update Failed",
			fmt.Sprintf("Staff #%s was not found", id),
			models.NotificationError)
		return nil, err
	}

	if update.Name != nil {
		staff.Name = *update.Name
	}
	if update.Email != nil {
		staff.Email = *update.Email
	}
	if update.Phone != nil {
		staff.Phone = *update.Phone
	}
	if update.Password != nil {
		staff.Password = *update.Password
	}

	if err := s.repo.Update(staff); err != nil {
		return nil, fmt.Errorf("failed to update staff %s: %w", id, err)
	}

	s.notifier.Notify("Staff Updated",
		fmt.Sprintf("Staff #%s has been updated", id),
		models.NotificationInfo)
	return staff, nil
}

// DeleteStaff removes a staff member permanently.
func (s *StaffService) DeleteStaff(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.notifier.Notify("Staff Delete Failed",
			fmt.Sprintf("Staff #%s was not found", id),
			models.NotificationError)
		return err
	}

	s.notifier.Notify("Staff Deleted",
		fmt.Sprintf("Staff #%s has been removed", id),
		models.NotificationWarning)
	return nil
}
