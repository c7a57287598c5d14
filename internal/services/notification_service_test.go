package services_test

import (
	"encoding/json"
	"testing"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestNotificationService_AddInsertsAtHead(t *testing.T) {
	service := services.NewNotificationService(nil)

	first := service.Add("First", "first message", models.NotificationInfo)
	second := service.Add("Second", "second message", models.NotificationSuccess)

	list := service.List()
	assert.Len(t, list, 2)
	// most recent first
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.False(t, list[0].Read)
	assert.False(t, list[1].Read)
	assert.Equal(t, 2, service.UnreadCount())
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	service := services.NewNotificationService(nil)

	n := service.Add("Order Updated", "Order #1 has been updated", models.NotificationSuccess)
	service.MarkAsRead(n.ID)

	list := service.List()
	assert.True(t, list[0].Read)
	assert.Equal(t, 0, service.UnreadCount())

	// unknown id is a no-op
	service.MarkAsRead("does-not-exist")
	assert.Len(t, service.List(), 1)
	assert.True(t, service.List()[0].Read)
}

func TestNotificationService_ClearAll(t *testing.T) {
	service := services.NewNotificationService(nil)

	service.Add("A", "a", models.NotificationInfo)
	n := service.Add("B", "b", models.NotificationWarning)
	service.MarkAsRead(n.ID)

	// clears regardless of read/unread state
	service.ClearAll()
	assert.Empty(t, service.List())
	assert.Equal(t, 0, service.UnreadCount())
}

func TestNotificationService_PublishesEvents(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	service := services.NewNotificationService(mockPublisher)

	mockPublisher.On("Publish", "notification.created", mock.MatchedBy(func(body []byte) bool {
		var n models.Notification
		if err := json.Unmarshal(body, &n); err != nil {
			return false
		}
		return n.Title == "Low Stock Alert" && n.Type == models.NotificationWarning
	})).Return(nil).Once()

	service.Add("Low Stock Alert", "Chandelier Light is running low (3 left)", models.NotificationWarning)
	mockPublisher.AssertExpectations(t)
}

func TestNotificationService_PublisherFailureDoesNotDropNotification(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	service := services.NewNotificationService(mockPublisher)

	mockPublisher.On("Publish", "notification.created", mock.Anything).Return(assert.AnError).Once()

	service.Add("Order Deleted", "Order #1 has been deleted", models.NotificationWarning)
	assert.Len(t, service.List(), 1)
	mockPublisher.AssertExpectations(t)
}
