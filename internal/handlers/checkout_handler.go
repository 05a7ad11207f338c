package handlers

import (
	"errors"
	"fmt"
	"log"

	"freshherbal/internal/models"
	"freshherbal/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler turns the current cart into a placed order.
type CheckoutHandler struct {
	cartService  *services.CartService
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(cartService *services.CartService, orderService *services.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		cartService:  cartService,
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// CheckoutRequest is the checkout form payload.
type CheckoutRequest struct {
	Customer models.Customer      `json:"customer"`
	Payment  models.PaymentMethod `json:"payment"`
}

// HandleCheckout validates the customer form, places the order from the
// current cart, then clears the cart. Placing and clearing are two
// separate store operations; a clear failure does not undo the order.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req.Customer); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	items, err := h.cartService.Items()
	if err != nil {
		log.Printf("Error loading cart for checkout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load cart",
			"error":   err.Error(),
		})
	}

	order, err := h.orderService.PlaceOrder(items, req.Customer, req.Payment)
	if err != nil {
		log.Printf("Error placing order: %v", err)
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrInvalidPayment) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Checkout rejected",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}

	if err := h.cartService.Clear(); err != nil {
		// The order is already placed; report but keep the 201.
		log.Printf("Warning: failed to clear cart after checkout %s: %v", order.OrderID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}
