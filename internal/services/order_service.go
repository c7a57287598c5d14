package services

import (
	"fmt"
	"log"
	"time"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"
)

// placeholderImageURL is attached to orders created without an image.
const placeholderImageURL = "https://via.placeholder.com/150?text=No+Image"

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:    true,
	models.OrderStatusProcessing: true,
	models.OrderStatusCompleted:  true,
	models.OrderStatusCancelled:  true,
}

// CurrentUserSource supplies the identity order activities are attributed
// to. Satisfied by AuthService; tests substitute a fake.
type CurrentUserSource interface {
	CurrentUser() *models.User
}

// OrderService handles business logic related to orders, including the
// per-order audit trail of who viewed or modified them.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	notifier    Notifier
	identity    CurrentUserSource
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, notifier Notifier, identity CurrentUserSource) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
		identity:    identity,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates a new order. Identifier, creation timestamp and the
// (empty) activity trail are system-assigned regardless of caller input;
// the display date defaults to today when omitted. The total is taken
// from the caller as-is and never recomputed. Stock of referenced catalog
// products is decremented by the quantity sold and may go negative.
func (s *OrderService) CreateOrder(input models.Order) (*models.Order, error) {
	input.ID = ""
	input.CreatedAt = time.Time{}
	input.Activities = []models.OrderActivity{}

	if input.Status == "" {
		input.Status = models.OrderStatusPending
	}
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}
	if input.ImageURL == "" {
		input.ImageURL = placeholderImageURL
	}
	if input.CreatedBy == "" {
		if user := s.identity.CurrentUser(); user != nil {
			input.CreatedBy = user.ID
		}
	}

	if err := s.orderRepo.Create(&input); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Decrement stock for items that reference a catalog product. A
	// missing product is logged and skipped, it does not fail the order.
	for _, item := range input.Items {
		if item.ProductID == "" {
			continue
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			log.Printf("Order %s references unknown product %s: %v", input.ID, item.ProductID, err)
			continue
		}
		product.Stock -= item.Quantity
		if err := s.productRepo.Update(product); err != nil {
			log.Printf("Failed to decrement stock for product %s: %v", item.ProductID, err)
		}
	}

	s.notifier.Notify("New Order Created",
		fmt.Sprintf("Order for %s has been created", input.CustomerName),
		models.NotificationSuccess)
	return &input, nil
}

// UpdateOrder merges the non-nil fields of update over the stored order
// and appends exactly one "modified" activity attributed to the current
// user. The activity is appended on every update call, whether or not any
// field actually changed; it is skipped only when the session is
// anonymous. An unknown id leaves the list unchanged and emits an error
// notification.
func (s *OrderService) UpdateOrder(id string, update models.OrderUpdate) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		s.notifier.Notify("Order Update Failed",
			fmt.Sprintf("Order #%s was not found", id),
			models.NotificationError)
		return nil, err
	}

	if update.CustomerName != nil {
		order.CustomerName = *update.CustomerName
	}
	if update.CustomerPhone != nil {
		order.CustomerPhone = *update.CustomerPhone
	}
	if update.Items != nil {
		order.Items = *update.Items
	}
	if update.Total != nil {
		order.Total = *update.Total
	}
	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.Date != nil {
		order.Date = *update.Date
	}
	if update.ImageURL != nil {
		order.ImageURL = *update.ImageURL
	}

	if user := s.identity.CurrentUser(); user != nil {
		order.Activities = append(order.Activities, models.OrderActivity{
			StaffID:   user.ID,
			StaffName: user.Name, // snapshot, deliberately not a live join
			Action:    models.ActivityModified,
			Timestamp: time.Now(),
		})
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}

	s.notifier.Notify("Order Updated",
		fmt.Sprintf("Order #%s has been updated", id),
		models.NotificationSuccess)
	return order, nil
}

// TrackOrderActivity appends a "viewed" or "modified" activity attributed
// to the current user, independent of any field mutation. It is a no-op
// when the session is anonymous.
func (s *OrderService) TrackOrderActivity(orderID, action string) error {
	if action != models.ActivityViewed && action != models.ActivityModified {
		return fmt.Errorf("invalid order activity action: %s", action)
	}

	user := s.identity.CurrentUser()
	if user == nil {
		return nil
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}

	order.Activities = append(order.Activities, models.OrderActivity{
		StaffID:   user.ID,
		StaffName: user.Name,
		Action:    action,
		Timestamp: time.Now(),
	})
	return s.orderRepo.Update(order)
}

// UpdateOrderStatus sets only the status field and emits a dedicated
// status notification. Unlike UpdateOrder it appends no activity record;
// the asymmetry is carried over from the system this replaces.
func (s *OrderService) UpdateOrderStatus(id, status string) (*models.Order, error) {
	if !validOrderStatuses[status] {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		s.notifier.Notify("Order Update Failed",
			fmt.Sprintf("Order #%s was not found", id),
			models.NotificationError)
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update status of order %s: %w", id, err)
	}

	s.notifier.Notify("Order Status Updated",
		fmt.Sprintf("Order #%s is now %s", id, status),
		models.NotificationInfo)
	return order, nil
}

// DeleteOrder removes an order permanently. An unknown id emits an error
// notification; successful deletion emits a warning.
func (s *OrderService) DeleteOrder(id string) error {
	if err := s.orderRepo.Delete(id); err != nil {
		s.notifier.Notify("Order Delete Failed",
			fmt.Sprintf("Order #%s was not found", id),
			models.NotificationError)
		return err
	}

	s.notifier.Notify("Order Deleted",
		fmt.Sprintf("Order #%s has been deleted", id),
		models.NotificationWarning)
	return nil
}
