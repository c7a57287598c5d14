package services_test

import (
	"fmt"
	"testing"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Ceiling Fan", Category: "Fans", Price: 89.99, Stock: 15},
		{ID: "2", Name: "LED Bulb Pack", Category: "Lights", Price: 19.99, Stock: 50},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	assert.Empty(t, notifier.all()) // fetch emits nothing
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		product := args.Get(0).(*models.Product)
		product.ID = "prod-1"
	}).Return(nil).Once()

	created, err := service.CreateProduct(models.Product{Name: "Smart Plug", Category: "Sockets", Price: 14.49, Stock: 55})
	assert.NoError(t, err)
	assert.Equal(t, "prod-1", created.ID)

	entries := notifier.all()
	assert.Len(t, entries, 1)
	assert.Equal(t, "New Product Added", entries[0].Title)
	assert.Equal(t, models.NotificationSuccess, entries[0].Type)
	assert.Contains(t, entries[0].Message, "Smart Plug")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProductMergesPartialFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	existing := &models.Product{ID: "1", Name: "Ceiling Fan", Description: "Old", Category: "Fans", Price: 89.99, Stock: 15}
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()

	price := 79.99
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		// only the supplied field changes; the rest is untouched
		return p.ID == "1" && p.Price == price && p.Name == "Ceiling Fan" && p.Stock == 15
	})).Return(nil).Once()

	updated, err := service.UpdateProduct("1", models.ProductUpdate{Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, 79.99, updated.Price)

	entries := notifier.all()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Product Updated", entries[0].Title)
	assert.Equal(t, models.NotificationInfo, entries[0].Type)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()

	name := "Ghost"
	product, err := service.UpdateProduct("99", models.ProductUpdate{Name: &name})
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")

	entries := notifier.all()
	assert.Len(t, entries, 1)
	assert.Equal(t, models.NotificationError, entries[0].Type)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct("1"))

	entries := notifier.all()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Product Deleted", entries[0].Title)
	assert.Equal(t, models.NotificationWarning, entries[0].Type)

	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err := service.DeleteProduct("99")
	assert.Error(t, err)

	entries = notifier.all()
	assert.Len(t, entries, 2)
	assert.Equal(t, models.NotificationError, entries[1].Type)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CheckLowStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	catalog := []models.Product{
		{ID: "1", Name: "Wall Socket", Category: "Sockets", Stock: 100},
		{ID: "2", Name: "Portable Air Conditioner", Category: "Fans", Stock: 3},
	}
	mockRepo.On("GetAll").Return(catalog, nil).Twice()

	low, err := service.CheckLowStock()
	assert.NoError(t, err)
	assert.Len(t, low, 1)
	assert.Equal(t, "Portable Air Conditioner", low[0].Name)

	entries := notifier.all()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Low Stock Alert", entries[0].Title)
	assert.Equal(t, models.NotificationWarning, entries[0].Type)
	assert.Contains(t, entries[0].Message, "Portable Air Conditioner")

	// repeated invocation re-notifies; there is no suppression window
	low, err = service.CheckLowStock()
	assert.NoError(t, err)
	assert.Len(t, low, 1)
	assert.Len(t, notifier.all(), 2)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CheckLowStockAtThreshold(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	// stock equal to the threshold qualifies
	catalog := []models.Product{
		{ID: "1", Name: "Chandelier Light", Category: "Lights", Stock: 5},
	}
	mockRepo.On("GetAll").Return(catalog, nil).Once()

	low, err := service.CheckLowStock()
	assert.NoError(t, err)
	assert.Len(t, low, 1)
	assert.Len(t, notifier.all(), 1)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DecrementStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	notifier := &recordingNotifier{}
	service := services.NewProductService(mockRepo, notifier, 5)

	existing := &models.Product{ID: "1", Name: "Smart Switch", Category: "Switches", Stock: 2}
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.Stock == -1
	})).Return(nil).Once()

	assert.NoError(t, service.DecrementStock("1", 3))
	// implicit stock mutation emits no notification
	assert.Empty(t, notifier.all())
	mockRepo.AssertExpectations(t)
}
