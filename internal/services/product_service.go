package services

import (
	"fmt"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
// Every mutating operation emits exactly one notification, synchronously,
// after the mutation and before returning.
type ProductService struct {
	repo              repositories.ProductRepository
	notifier          Notifier
	lowStockThreshold int
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, notifier Notifier, lowStockThreshold int) *ProductService {
	return &ProductService{
		repo:              repo,
		notifier:          notifier,
		lowStockThreshold: lowStockThreshold,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. Identifier and creation timestamp
// are system-assigned; caller-supplied values for them are discarded.
func (s *ProductService) CreateProduct(input models.Product) (*models.Product, error) {
	input.ID = ""
	if err := s.repo.Create(&input); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.notifier.Notify("New Product Added",
		fmt.Sprintf("%s has been added to the inventory", input.Name),
		models.NotificationSuccess)
	return &input, nil
}

// UpdateProduct merges the non-nil fields of update over the stored
// product. An unknown id leaves the catalog unchanged and emits an
// error notification.
func (s *ProductService) UpdateProduct(id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		s.notifier.Notify("Product Update Failed",
			fmt.Sprintf("Product #%s was not found", id),
			models.NotificationError)
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.ImageURL != nil {
		product.ImageURL = *update.ImageURL
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	s.notifier.Notify("Product Updated",
		fmt.Sprintf("Product #%s has been updated", id),
		models.NotificationInfo)
	return product, nil
}

// DeleteProduct removes a product permanently. An unknown id emits an
// error notification; successful deletion emits a warning.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.notifier.Notify("Product Delete Failed",
			fmt.Sprintf("Product #%s was not found", id),
			models.NotificationError)
		return err
	}

	s.notifier.Notify("Product Deleted",
		fmt.Sprintf("Product #%s has been deleted", id),
		models.NotificationWarning)
	return nil
}

// DecrementStock reduces a product's stock by the quantity sold. Stock is
// allowed to go negative; there is no guard at this level. No notification
// is emitted since this is an implicit mutation driven by order placement.
func (s *ProductService) DecrementStock(id string, quantity int) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	product.Stock -= quantity
	return s.repo.Update(product)
}

// CheckLowStock scans the full catalog and emits one warning notification
// per product at or below the threshold. The scan is pull-based and keeps
// no memory between calls: products still under threshold are re-notified
// on every invocation.
func (s *ProductService) CheckLowStock() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to scan products for low stock: %w", err)
	}

	var low []models.Product
	for _, product := range products {
		if product.Stock <= s.lowStockThreshold {
			low = append(low, product)
			s.notifier.Notify("Low Stock Alert",
				fmt.Sprintf("%s is running low (%d left)", product.Name, product.Stock),
				models.NotificationWarning)
		}
	}
	return low, nil
}
