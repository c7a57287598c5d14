package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/PhotofineColorLab/Sarathi/internal/models"

	"github.com/google/uuid"
)

// MemoryStaffRepository is an in-memory implementation of StaffRepository.
type MemoryStaffRepository struct {
	staff []models.Staff
	mu    sync.RWMutex
}

// NewMemoryStaffRepository creates a new instance of MemoryStaffRepository.
func NewMemoryStaffRepository() *MemoryStaffRepository {
	return &MemoryStaffRepository{}
}

// GetAll returns all staff members in insertion order.
func (r *MemoryStaffRepository) GetAll() ([]models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staffList := make([]models.Staff, len(r.staff))
	copy(staffList, r.staff)
	return staffList, nil
}

// GetByID returns a staff member by ID.
func (r *MemoryStaffRepository) GetByID(id string) (*models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.staff {
		if r.staff[i].ID == id {
			member := r.staff[i]
			return &member, nil
		}
	}
	return nil, fmt.Errorf("staff with ID %s not found", id)
}

// GetByEmail returns a staff member by their login email.
func (r *MemoryStaffRepository) GetByEmail(email string) (*models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.staff {
		if r.staff[i].Email == email {
			member := r.staff[i]
			return &member, nil
		}
	}
	return nil, fmt.Errorf("staff with email %s not found", email)
}

// Create appends a new staff member.
func (r *MemoryStaffRepository) Create(staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if staff.CreatedAt.IsZero() {
		staff.CreatedAt = time.Now()
	}
	r.staff = append(r.staff, *staff)
	return nil
}

// Update replaces an existing staff member wholesale.
func (r *MemoryStaffRepository) Update(staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.staff {
		if r.staff[i].ID == staff.ID {
			r.staff[i] = *staff
			return nil
		}
	}
	return fmt.Errorf("staff with ID %s not found for update", staff.ID)
}

// Delete removes a staff member by ID.
func (r *MemoryStaffRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.staff {
		if r.staff[i].ID == id {
			r.staff = append(r.staff[:i], r.staff[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("staff with ID %s not found for deletion", id)
}
