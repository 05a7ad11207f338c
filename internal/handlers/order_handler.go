package handlers

import (
	"errors"
	"log"

	"freshherbal/internal/models"
	"freshherbal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// defaultPageSize matches the order-history page length.
const defaultPageSize = 5

// OrderHandler handles HTTP requests for the order history.
type OrderHandler struct {
	orderService *services.OrderService
	cartService  *services.CartService
}

// NewOrderHandler creates a new OrderHandler. The cart service is
// needed for reordering past purchases.
func NewOrderHandler(orderService *services.OrderService, cartService *services.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/statistics", h.HandleStatistics)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Patch("/:id/status", h.HandleSetStatus)
	orderRoutes.Post("/:id/cancel", h.HandleCancel)
	orderRoutes.Post("/:id/receive", h.HandleConfirmReceipt)
	orderRoutes.Post("/:id/reorder", h.HandleReorder)
}

// HandleListOrders returns a filtered, paginated page of the order
// history, newest first.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	filter := services.OrderFilter{
		Status:    models.OrderStatus(c.Query("status")),
		DateRange: c.Query("range", services.DateRangeAll),
		Search:    c.Query("search"),
	}
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", defaultPageSize)

	orders, err := h.orderService.List(filter)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"orders":    services.Paginate(orders, page, pageSize),
		"total":     len(orders),
		"page":      page,
		"page_size": pageSize,
	})
}

// HandleStatistics returns the order history summary for the dashboard.
func (h *OrderHandler) HandleStatistics(c *fiber.Ctx) error {
	stats, err := h.orderService.Statistics()
	if err != nil {
		log.Printf("Error computing order statistics: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute statistics",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}

// HandleGetOrder retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orderService.GetByID(orderID)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleSetStatus moves an order to a new lifecycle status. Used by the
// fulfillment side; shopper-facing transitions have their own routes.
func (h *OrderHandler) HandleSetStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update",
		})
	}

	order, err := h.orderService.SetStatus(orderID, updateData.Status)
	if err != nil {
		return h.statusChangeError(c, orderID, err)
	}
	return c.JSON(order)
}

// HandleCancel is the shopper cancelling a still-pending order.
func (h *OrderHandler) HandleCancel(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orderService.Cancel(orderID)
	if err != nil {
		return h.statusChangeError(c, orderID, err)
	}
	return c.JSON(order)
}

// HandleConfirmReceipt is the shopper confirming delivery of a shipped
// order.
func (h *OrderHandler) HandleConfirmReceipt(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orderService.ConfirmReceipt(orderID)
	if err != nil {
		return h.statusChangeError(c, orderID, err)
	}
	return c.JSON(order)
}

// HandleReorder copies a past order's items back into the live cart
// through the normal merge rules.
func (h *OrderHandler) HandleReorder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orderService.GetByID(orderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}

	var items []models.LineItem
	for _, item := range order.Items {
		items, err = h.cartService.AddItem(item)
		if err != nil {
			log.Printf("Error reordering %s: %v", orderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not add items to cart",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"message": "Items added to cart",
		"items":   items,
	})
}

// statusChangeError maps status transition failures to HTTP statuses.
func (h *OrderHandler) statusChangeError(c *fiber.Ctx, orderID string, err error) error {
	log.Printf("Error updating order %s: %v", orderID, err)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Status change not allowed",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unknown order status",
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}
}
