package models_test

import (
	"testing"

	"freshherbal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	// Forward lifecycle
	assert.True(t, models.StatusPending.CanTransitionTo(models.StatusProcessing))
	assert.True(t, models.StatusProcessing.CanTransitionTo(models.StatusShipped))
	assert.True(t, models.StatusShipped.CanTransitionTo(models.StatusCompleted))

	// Shopper cancel, only while pending
	assert.True(t, models.StatusPending.CanTransitionTo(models.StatusCancelled))
	assert.False(t, models.StatusProcessing.CanTransitionTo(models.StatusCancelled))
	assert.False(t, models.StatusShipped.CanTransitionTo(models.StatusCancelled))

	// Terminal states never move
	assert.False(t, models.StatusCompleted.CanTransitionTo(models.StatusPending))
	assert.False(t, models.StatusCompleted.CanTransitionTo(models.StatusCancelled))
	assert.False(t, models.StatusCancelled.CanTransitionTo(models.StatusPending))
	assert.False(t, models.StatusCancelled.CanTransitionTo(models.StatusCompleted))

	// No skipping ahead
	assert.False(t, models.StatusPending.CanTransitionTo(models.StatusShipped))
	assert.False(t, models.StatusPending.CanTransitionTo(models.StatusCompleted))

	// Re-asserting the current status is not a transition
	assert.False(t, models.StatusPending.CanTransitionTo(models.StatusPending))
}

func TestOrderStatusLabels(t *testing.T) {
	assert.Equal(t, "Menunggu Pembayaran", models.StatusPending.Label())
	assert.Equal(t, "Selesai", models.StatusCompleted.Label())
	assert.Equal(t, "Dibatalkan", models.StatusCancelled.Label())

	// Unknown tags fall back to the raw value
	unknown := models.OrderStatus("refunded")
	assert.Equal(t, "refunded", unknown.Label())
	assert.False(t, unknown.IsValid())
}

func TestPaymentMethodLabels(t *testing.T) {
	assert.Equal(t, "Transfer Bank", models.PaymentTransfer.Label())
	assert.Equal(t, "Cash on Delivery", models.PaymentCOD.Label())
	assert.Equal(t, "E-Wallet", models.PaymentEWallet.Label())

	assert.True(t, models.PaymentTransfer.IsValid())
	assert.False(t, models.PaymentMethod("crypto").IsValid())
}

func TestOrderTotal(t *testing.T) {
	order := models.Order{
		Items: []models.LineItem{
			{ID: "1", Price: 45000, Quantity: 2},
			{ID: "2", Price: 35000, Quantity: 1},
		},
	}
	assert.Equal(t, int64(125000), order.Total())
}
