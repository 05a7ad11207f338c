package models_test

import (
	"testing"

	"freshherbal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, models.ClampQuantity(0))
	assert.Equal(t, 1, models.ClampQuantity(-5))
	assert.Equal(t, 1, models.ClampQuantity(1))
	assert.Equal(t, 42, models.ClampQuantity(42))
	assert.Equal(t, 99, models.ClampQuantity(99))
	assert.Equal(t, 99, models.ClampQuantity(150))
}

func TestComputeTotals_ShippingThreshold(t *testing.T) {
	// One rupiah below the threshold still pays the flat fee
	items := []models.LineItem{
		{ID: "1", Name: "Madu Murni", Price: 199999, Quantity: 1},
	}
	totals := models.ComputeTotals(items)
	assert.Equal(t, int64(199999), totals.Subtotal)
	assert.Equal(t, int64(15000), totals.Shipping)
	assert.Equal(t, int64(214999), totals.Total)

	// Exactly at the threshold ships free
	items[0].Price = 200000
	totals = models.ComputeTotals(items)
	assert.Equal(t, int64(0), totals.Shipping)
	assert.Equal(t, int64(200000), totals.Total)
}

func TestComputeTotals_FreeShippingAboveThreshold(t *testing.T) {
	items := []models.LineItem{
		{ID: "1", Name: "Madu Murni", Price: 125000, Quantity: 2},
	}
	totals := models.ComputeTotals(items)
	assert.Equal(t, int64(250000), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Shipping)
	assert.Equal(t, totals.Subtotal, totals.Total)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := models.ComputeTotals(nil)
	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Shipping)
	assert.Equal(t, int64(0), totals.Total)
	assert.Equal(t, 0, totals.ItemCount)
}

func TestComputeTotals_Pure(t *testing.T) {
	items := []models.LineItem{
		{ID: "1", Name: "Black Garlic", Price: 45000, Quantity: 3},
		{ID: "2", Name: "Teh Herbal Jahe", Price: 35000, Quantity: 1},
	}
	first := models.ComputeTotals(items)
	second := models.ComputeTotals(items)
	assert.Equal(t, first, second)
}

func TestCopyItems_Isolation(t *testing.T) {
	original := []models.LineItem{
		{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 1},
	}
	snapshot := models.CopyItems(original)

	original[0].Quantity = 10
	assert.Equal(t, 1, snapshot[0].Quantity)
}
