package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"freshherbal/internal/models"
	"freshherbal/internal/repositories"
	"freshherbal/pkg/rabbitmq"
)

// Date-range tags accepted by the order history filter.
const (
	DateRangeWeek      = "7days"
	DateRangeMonth     = "30days"
	DateRangeQuarter   = "3months"
	DateRangeSince2024 = "since2024"
	DateRangeAll       = "all"
)

// OrderFilter selects a subset of the order history. Zero values mean
// "no constraint".
type OrderFilter struct {
	Status    models.OrderStatus
	DateRange string
	Search    string
}

// OrderService owns the order ledger: placing orders, status
// transitions and filtered read views. Orders are append-only; after
// creation only the status field changes.
type OrderService struct {
	store    repositories.BlobStore
	mqClient *rabbitmq.Client
}

// NewOrderService creates a new OrderService. The RabbitMQ client may
// be nil, in which case events are skipped.
func NewOrderService(store repositories.BlobStore, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		store:    store,
		mqClient: mqClient,
	}
}

// Orders returns the full ledger in insertion order.
func (s *OrderService) Orders() ([]models.Order, error) {
	var orders []models.Order
	if _, err := s.store.Load(repositories.OrdersKey, &orders); err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// GetByID returns the order with the given ID.
func (s *OrderService) GetByID(orderID string) (*models.Order, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderID, ErrOrderNotFound)
}

// PlaceOrder appends a new pending order built from the given cart
// items. The items are deep-copied so later cart mutations cannot touch
// the placed order. The caller clears the cart itself; the two stores
// stay decoupled.
func (s *OrderService) PlaceOrder(items []models.LineItem, customer models.Customer, payment models.PaymentMethod) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !payment.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayment, payment)
	}

	now := time.Now()
	order := models.Order{
		OrderID:  fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Customer: customer,
		Payment:  payment,
		Items:    models.CopyItems(items),
		Date:     now,
		Status:   models.StatusPending,
	}

	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := s.store.Save(repositories.OrdersKey, orders); err != nil {
		return nil, fmt.Errorf("failed to save orders: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderId": order.OrderID,
		"status":  order.Status,
		"payment": order.Payment,
		"total":   order.Total(),
	})

	return &order, nil
}

// List returns the orders matching the filter, newest first. The sort
// is stable so same-date orders keep their insertion order.
func (s *OrderService) List(filter OrderFilter) ([]models.Order, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}

	cutoff, hasCutoff := dateRangeCutoff(filter.DateRange, time.Now())
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if hasCutoff && order.Date.Before(cutoff) {
			continue
		}
		if search != "" && !matchesSearch(order, search) {
			continue
		}
		filtered = append(filtered, order)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered, nil
}

// Paginate slices a filtered order list into 1-indexed pages.
// Out-of-range pages yield an empty slice.
func Paginate(orders []models.Order, page, pageSize int) []models.Order {
	if page < 1 || pageSize < 1 {
		return []models.Order{}
	}
	start := (page - 1) * pageSize
	if start >= len(orders) {
		return []models.Order{}
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}

// SetStatus moves the order with the given ID to newStatus, enforcing
// the lifecycle state machine. completed and cancelled orders cannot be
// changed.
func (s *OrderService) SetStatus(orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}
		if !orders[i].Status.CanTransitionTo(newStatus) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, orders[i].Status, newStatus)
		}
		orders[i].Status = newStatus
		if err := s.store.Save(repositories.OrdersKey, orders); err != nil {
			return nil, fmt.Errorf("failed to save orders: %w", err)
		}

		s.publishEvent("order.status_changed", map[string]interface{}{
			"orderId": orderID,
			"status":  newStatus,
		})
		return &orders[i], nil
	}
	return nil, fmt.Errorf("order %s: %w", orderID, ErrOrderNotFound)
}

// Cancel is the shopper-initiated cancellation, legal only while the
// order is still pending.
func (s *OrderService) Cancel(orderID string) (*models.Order, error) {
	return s.SetStatus(orderID, models.StatusCancelled)
}

// ConfirmReceipt is the shopper confirming delivery of a shipped order.
func (s *OrderService) ConfirmReceipt(orderID string) (*models.Order, error) {
	return s.SetStatus(orderID, models.StatusCompleted)
}

// Statistics summarises the whole ledger. Total spent counts completed
// orders only; the average divides spent across all orders, floored.
func (s *OrderService) Statistics() (models.OrderStatistics, error) {
	orders, err := s.Orders()
	if err != nil {
		return models.OrderStatistics{}, err
	}

	stats := models.OrderStatistics{TotalOrders: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case models.StatusCompleted:
			stats.CompletedOrders++
			stats.TotalSpent += order.Total()
		case models.StatusPending, models.StatusProcessing:
			stats.PendingOrders++
		}
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalSpent / int64(stats.TotalOrders)
	}
	return stats, nil
}

// RecentOrders returns the n newest orders for the dashboard.
func (s *OrderService) RecentOrders(n int) ([]models.Order, error) {
	orders, err := s.List(OrderFilter{})
	if err != nil {
		return nil, err
	}
	if n < len(orders) {
		orders = orders[:n]
	}
	return orders, nil
}

func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// dateRangeCutoff resolves a date-range tag to its cutoff instant.
// Unknown tags and "all" apply no cutoff.
func dateRangeCutoff(rangeTag string, now time.Time) (time.Time, bool) {
	switch rangeTag {
	case DateRangeWeek:
		return now.AddDate(0, 0, -7), true
	case DateRangeMonth:
		return now.AddDate(0, 0, -30), true
	case DateRangeQuarter:
		return now.AddDate(0, -3, 0), true
	case DateRangeSince2024:
		return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}

// matchesSearch checks the order ID and item names, case-insensitively.
func matchesSearch(order models.Order, search string) bool {
	if strings.Contains(strings.ToLower(order.OrderID), search) {
		return true
	}
	for _, item := range order.Items {
		if strings.Contains(strings.ToLower(item.Name), search) {
			return true
		}
	}
	return false
}
