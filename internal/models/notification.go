package models

import "time"

// Notification severities.
const (
	NotificationSuccess = "success"
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is a transient user-visible event message, distinct from
// persisted business data. Entries are never mutated after insertion
// except for the Read flag.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"` // success, info, warning or error
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
