package handlers

import (
	"log"

	"freshherbal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// recentOrderCount matches the dashboard's recent-orders panel.
const recentOrderCount = 5

// DashboardHandler serves the customer dashboard view: profile, order
// statistics and recent orders in one response.
type DashboardHandler struct {
	profileService *services.ProfileService
	orderService   *services.OrderService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(profileService *services.ProfileService, orderService *services.OrderService) *DashboardHandler {
	return &DashboardHandler{
		profileService: profileService,
		orderService:   orderService,
	}
}

// RegisterRoutes registers the dashboard route with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleGetDashboard)
}

// HandleGetDashboard aggregates everything the dashboard page shows.
func (h *DashboardHandler) HandleGetDashboard(c *fiber.Ctx) error {
	profile, err := h.profileService.Get()
	if err != nil {
		log.Printf("Error loading profile for dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load profile",
			"error":   err.Error(),
		})
	}
	profile.Password = ""

	stats, err := h.orderService.Statistics()
	if err != nil {
		log.Printf("Error computing statistics for dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute statistics",
			"error":   err.Error(),
		})
	}

	recent, err := h.orderService.RecentOrders(recentOrderCount)
	if err != nil {
		log.Printf("Error loading recent orders for dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load recent orders",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"profile":       profile,
		"statistics":    stats,
		"recent_orders": recent,
	})
}
