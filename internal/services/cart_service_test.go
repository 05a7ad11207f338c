package services_test

import (
	"fmt"
	"testing"

	"freshherbal/internal/models"
	"freshherbal/internal/repositories"
	"freshherbal/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartService() (*services.CartService, *repositories.MockBlobStore) {
	store := repositories.NewMockBlobStore()
	return services.NewCartService(store), store
}

func TestCartService_AddItemMergesOnID(t *testing.T) {
	service, _ := newCartService()

	_, err := service.AddItem(models.LineItem{ID: "1", Name: "Black Garlic", Price: 45000, Quantity: 1})
	assert.NoError(t, err)

	items, err := service.AddItem(models.LineItem{ID: "1", Name: "Black Garlic", Price: 45000, Quantity: 2})
	assert.NoError(t, err)

	// Same ID merges into one line with the summed quantity
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	totals, err := service.Totals()
	assert.NoError(t, err)
	assert.Equal(t, int64(135000), totals.Subtotal)
	assert.Equal(t, int64(15000), totals.Shipping)
	assert.Equal(t, int64(150000), totals.Total)
}

func TestCartService_AddItemClampsMergedQuantity(t *testing.T) {
	service, _ := newCartService()

	_, err := service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 90})
	assert.NoError(t, err)
	items, err := service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 50})
	assert.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Equal(t, 99, items[0].Quantity)
}

func TestCartService_AddItemDefaultsQuantity(t *testing.T) {
	service, _ := newCartService()

	items, err := service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000})
	assert.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartService_AddItemPreservesInsertionOrder(t *testing.T) {
	service, _ := newCartService()

	service.AddItem(models.LineItem{ID: "2", Name: "Black Garlic", Price: 45000, Quantity: 1})
	service.AddItem(models.LineItem{ID: "101", Name: "Teh Herbal Jahe", Price: 35000, Quantity: 1})
	items, err := service.AddItem(models.LineItem{ID: "2", Name: "Black Garlic", Price: 45000, Quantity: 1})
	assert.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "101", items[1].ID)
}

func TestCartService_SetQuantityClamps(t *testing.T) {
	service, _ := newCartService()
	service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 5})

	items, err := service.SetQuantity("1", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)

	items, err = service.SetQuantity("1", 150)
	assert.NoError(t, err)
	assert.Equal(t, 99, items[0].Quantity)

	items, err = service.SetQuantity("1", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCartService_SetQuantityUnknownIDIsNoop(t *testing.T) {
	service, _ := newCartService()
	service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 2})

	items, err := service.SetQuantity("99", 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_AdjustQuantity(t *testing.T) {
	service, _ := newCartService()
	service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 2})

	items, err := service.AdjustQuantity("1", 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, items[0].Quantity)

	items, err = service.AdjustQuantity("1", -5)
	assert.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)

	// Unknown ID is a no-op
	items, err = service.AdjustQuantity("99", 1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartService_RemoveItem(t *testing.T) {
	service, _ := newCartService()
	service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 1})
	service.AddItem(models.LineItem{ID: "2", Name: "Black Garlic", Price: 45000, Quantity: 1})

	items, err := service.RemoveItem("1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	// Removing an absent ID leaves the cart unchanged
	before, _ := service.Totals()
	items, err = service.RemoveItem("does-not-exist")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	after, _ := service.Totals()
	assert.Equal(t, before, after)
}

func TestCartService_ClearEmptiesButKeepsKey(t *testing.T) {
	service, store := newCartService()
	service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 1})

	assert.NoError(t, service.Clear())

	items, err := service.Items()
	assert.NoError(t, err)
	assert.Empty(t, items)

	// The key stays present holding an empty list
	var persisted []models.LineItem
	found, err := store.Load(repositories.CartKey, &persisted)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, persisted)
}

func TestCartService_FreeShippingScenario(t *testing.T) {
	service, _ := newCartService()
	service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 125000, Quantity: 2})

	totals, err := service.Totals()
	assert.NoError(t, err)
	assert.Equal(t, int64(250000), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Shipping)
	assert.Equal(t, totals.Subtotal, totals.Total)
}

func TestCartService_PersistsAcrossInstances(t *testing.T) {
	store := repositories.NewMockBlobStore()
	first := services.NewCartService(store)
	first.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 2})

	second := services.NewCartService(store)
	items, err := second.Items()
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_SaveFailureIsReported(t *testing.T) {
	service, store := newCartService()
	store.SaveErr = fmt.Errorf("storage quota exceeded")

	_, err := service.AddItem(models.LineItem{ID: "1", Name: "Madu Murni", Price: 85000, Quantity: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "storage quota exceeded")

	// Nothing was persisted; the cart reads back empty
	store.SaveErr = nil
	items, err := service.Items()
	assert.NoError(t, err)
	assert.Empty(t, items)
}
