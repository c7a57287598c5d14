package models

// User roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an authenticated identity. Admins come from a static list;
// staff identities are resolved against the staff store at login time.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // plain comparison at login, never serialized
	Role     string `json:"role"`
	Name     string `json:"name"`
}
