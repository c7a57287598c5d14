package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/PhotofineColorLab/Sarathi/internal/models"

	"github.com/google/uuid"
)

// Notifier is the sink the entity services push their side-effect
// notifications into. Tests substitute a fake; at runtime it is the
// NotificationService below.
type Notifier interface {
	Notify(title, message, notificationType string)
}

// EventPublisher publishes dashboard events to an external broker.
// Implemented by pkg/events.Client; may be nil when no broker is configured.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// NotificationService holds the append-only, newest-first notification log
// shown in the dashboard bell. Entries are only ever mutated through their
// read flag; the list is unbounded for the lifetime of the process.
type NotificationService struct {
	mu            sync.RWMutex
	notifications []models.Notification
	publisher     EventPublisher
}

// NewNotificationService creates a new NotificationService. publisher may
// be nil; notifications are then kept in-process only.
func NewNotificationService(publisher EventPublisher) *NotificationService {
	return &NotificationService{
		publisher: publisher,
	}
}

// Notify implements Notifier.
func (s *NotificationService) Notify(title, message, notificationType string) {
	s.Add(title, message, notificationType)
}

// Add inserts a new unread notification at the head of the log and, when a
// broker is configured, publishes it as a JSON event.
func (s *NotificationService) Add(title, message, notificationType string) models.Notification {
	notification := models.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Read:      false,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.notifications = append([]models.Notification{notification}, s.notifications...)
	s.mu.Unlock()

	if s.publisher != nil {
		body, err := json.Marshal(notification)
		if err != nil {
			log.Printf("Failed to marshal notification to JSON: %v", err)
		} else if err := s.publisher.Publish("notification.created", body); err != nil {
			log.Printf("Warning: Failed to publish notification event: %v", err)
		}
	}

	return notification
}

// List returns the notification log, most recent first.
func (s *NotificationService) List() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Notification, len(s.notifications))
	copy(list, s.notifications)
	return list
}

// MarkAsRead clears the unread flag for the matching entry. Unknown ids
// are a no-op.
func (s *NotificationService) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// ClearAll empties the log unconditionally.
func (s *NotificationService) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = nil
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}
