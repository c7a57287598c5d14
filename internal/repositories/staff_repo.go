package repositories

import "github.com/PhotofineColorLab/Sarathi/internal/models"

// StaffRepository defines the interface for staff data access.
type StaffRepository interface {
	GetAll() ([]models.Staff, error)
	GetByID(id string) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	Create(staff *models.Staff) error
	Update(staff *models.Staff) error
	Delete(id string) error
}
