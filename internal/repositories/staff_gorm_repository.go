package repositories

import (
	"fmt"

	"github.com/PhotofineColorLab/Sarathi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStaffRepository is a GORM implementation of StaffRepository.
type GORMStaffRepository struct {
	db *gorm.DB
}

// NewGORMStaffRepository creates a new instance of GORMStaffRepository.
func NewGORMStaffRepository(db *gorm.DB) *GORMStaffRepository {
	return &GORMStaffRepository{
		db: db,
	}
}

// GetAll retrieves all staff members in creation order.
func (r *GORMStaffRepository) GetAll() ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.db.Order("created_at").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to get all staff: %w", err)
	}
	return staff, nil
}

// GetByID retrieves a staff member by their ID.
func (r *GORMStaffRepository) GetByID(id string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("staff with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get staff by ID %s: %w", id, err)
	}
	return &staff, nil
}

// GetByEmail retrieves a staff member by their login email.
func (r *GORMStaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("staff with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get staff by email %s: %w", email, err)
	}
	return &staff, nil
}

// Create creates a new staff member in the database.
func (r *GORMStaffRepository) Create(staff *models.Staff) error {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if err := r.db.Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

// Update updates an existing staff member in the database.
func (r *GORMStaffRepository) Update(staff *models.Staff) error {
	res := r.db.Save(staff)
	if res.Error != nil {
		return fmt.Errorf("failed to update staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("staff with ID %s not found for update", staff.ID)
	}
	return nil
}

// Delete deletes a staff member by their ID from the database.
func (r *GORMStaffRepository) Delete(id string) error {
	res := r.db.Delete(&models.Staff{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("staff with ID %s not found for deletion", id)
	}
	return nil
}
