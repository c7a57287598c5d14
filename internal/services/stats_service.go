package services

import (
	"fmt"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"
)

// DashboardStats is the summary block shown at the top of the dashboard.
type DashboardStats struct {
	TotalOrders      int     `json:"total_orders"`
	PendingOrders    int     `json:"pending_orders"`
	CompletedOrders  int     `json:"completed_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	LowStockProducts int     `json:"low_stock_products"`
}

// StatsService computes basic sales analytics over the order and product
// lists. Purely derived state; nothing here mutates a store.
type StatsService struct {
	orderRepo         repositories.OrderRepository
	productRepo       repositories.ProductRepository
	lowStockThreshold int
}

// NewStatsService creates a new StatsService.
func NewStatsService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, lowStockThreshold int) *StatsService {
	return &StatsService{
		orderRepo:         orderRepo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// Dashboard returns the current dashboard summary. Revenue counts
// completed orders only.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for stats: %w", err)
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load products for stats: %w", err)
	}

	stats := &DashboardStats{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.TotalRevenue += order.Total
		}
	}
	for _, product := range products {
		if product.Stock <= s.lowStockThreshold {
			stats.LowStockProducts++
		}
	}
	return stats, nil
}
