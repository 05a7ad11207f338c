package handlers

import (
	"log"

	"freshherbal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cartService    *services.CartService
	productService *services.ProductService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, productService *services.ProductService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		productService: productService,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// HandleGetCart returns the cart contents together with the derived
// totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	items, err := h.cartService.Items()
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load cart",
			"error":   err.Error(),
		})
	}
	totals, err := h.cartService.Totals()
	if err != nil {
		log.Printf("Error computing cart totals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute cart totals",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"items":  items,
		"totals": totals,
	})
}

// AddItemRequest is the request body for adding a catalog product to
// the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// HandleAddItem adds a catalog product to the cart, merging quantities
// when the product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}

	product, err := h.productService.GetProductByID(req.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
			"error":   err.Error(),
		})
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	items, err := h.cartService.AddItem(product.ToLineItem(quantity))
	if err != nil {
		log.Printf("Error adding item to cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	totals, err := h.cartService.Totals()
	if err != nil {
		log.Printf("Error computing cart totals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute cart totals",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"items":  items,
		"totals": totals,
	})
}

// UpdateQuantityRequest carries either an absolute quantity or a
// relative delta for a cart line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
	Delta    *int `json:"delta"`
}

// HandleUpdateQuantity sets or adjusts the quantity of a cart line.
// Out-of-range values are clamped, never rejected; unknown line IDs are
// a no-op.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	var err error
	switch {
	case req.Quantity != nil:
		_, err = h.cartService.SetQuantity(itemID, *req.Quantity)
	case req.Delta != nil:
		_, err = h.cartService.AdjustQuantity(itemID, *req.Delta)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Either quantity or delta is required",
		})
	}
	if err != nil {
		log.Printf("Error updating quantity for item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update quantity",
			"error":   err.Error(),
		})
	}
	return h.HandleGetCart(c)
}

// HandleRemoveItem removes a cart line. Removing an absent line is a
// no-op, not an error.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if _, err := h.cartService.RemoveItem(itemID); err != nil {
		log.Printf("Error removing item %s from cart: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item",
			"error":   err.Error(),
		})
	}
	return h.HandleGetCart(c)
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.cartService.Clear(); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
