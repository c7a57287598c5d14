package models

import "time"

// Staff represents a staff member of the shop. Email doubles as the
// login key. The password is stored and compared in plaintext; this is
// a known gap carried over from the system this replaces.
type Staff struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// StaffUpdate carries a partial staff update; nil fields are untouched.
type StaffUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}
