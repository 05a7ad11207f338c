package services

import "errors"

// Sentinel errors returned by the cart and order services. Handlers
// branch on these with errors.Is to pick a response status.
var (
	// ErrEmptyCart is returned when checkout is attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderNotFound is returned when no order matches the given ID.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned for a status tag outside the closed set.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition is returned when the requested status change
	// is not allowed from the order's current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidPayment is returned for a payment tag outside the closed set.
	ErrInvalidPayment = errors.New("invalid payment method")

	// ErrNoPassword is returned on login when the profile has no
	// password set yet.
	ErrNoPassword = errors.New("no password set for profile")
)
