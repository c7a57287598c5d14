package main

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSeedProducts(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	seedProducts(repo)

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 8)
	assert.Equal(t, "Ceiling Fan", products[0].Name)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.True(t, models.ValidCategory(p.Category), "seeded category %q must be valid", p.Category)
	}
}

func TestSeedProductsSkipsNonEmptyStore(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	existing := &models.Product{Name: "Existing Product", Price: 1.00, Category: "Lights", Stock: 1}
	assert.NoError(t, repo.Create(existing))

	seedProducts(repo)

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Existing Product", products[0].Name)
}

func TestSeedOrders(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()

	seedOrders(repo)

	orders, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, "John Smith", orders[0].CustomerName)
	assert.Equal(t, models.OrderStatusCompleted, orders[1].Status)
	for _, o := range orders {
		assert.NotEmpty(t, o.ID)
		assert.NotEmpty(t, o.Items)
		assert.NotNil(t, o.Activities)
	}
}
