package models

import "time"

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// statusLabels maps each status to its customer-facing display text.
var statusLabels = map[OrderStatus]string{
	StatusPending:    "Menunggu Pembayaran",
	StatusProcessing: "Sedang Diproses",
	StatusShipped:    "Dalam Pengiriman",
	StatusCompleted:  "Selesai",
	StatusCancelled:  "Dibatalkan",
}

// statusTransitions is the allowed state machine. pending can be
// advanced by fulfillment or cancelled by the shopper; completed and
// cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped},
	StatusShipped:    {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid reports whether the status is a member of the closed set.
func (s OrderStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display text for the status, falling back to the
// raw tag for unknown values.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CanTransitionTo reports whether moving from s to next is a legal
// state-machine transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentMethod is the payment tag chosen at checkout.
type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCOD      PaymentMethod = "cod"
	PaymentEWallet  PaymentMethod = "ewallet"
)

var paymentLabels = map[PaymentMethod]string{
	PaymentTransfer: "Transfer Bank",
	PaymentCOD:      "Cash on Delivery",
	PaymentEWallet:  "E-Wallet",
}

// IsValid reports whether the payment method is a member of the closed set.
func (p PaymentMethod) IsValid() bool {
	_, ok := paymentLabels[p]
	return ok
}

// Label returns the display text for the payment method, falling back
// to the raw tag for unknown values.
func (p PaymentMethod) Label() string {
	if label, ok := paymentLabels[p]; ok {
		return label
	}
	return string(p)
}

// Customer is the checkout-form snapshot attached to an order.
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,numeric,min=10,max=13"`
	Address string `json:"address" validate:"required"`
}

// Order is an immutable snapshot of a completed checkout. Only Status
// changes after creation.
type Order struct {
	OrderID  string        `json:"orderId"`
	Customer Customer      `json:"customer"`
	Payment  PaymentMethod `json:"payment"`
	Items    []LineItem    `json:"items"`
	Date     time.Time     `json:"date"`
	Status   OrderStatus   `json:"status"`
}

// Total returns the monetary total of the order's item snapshot.
func (o Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// OrderStatistics summarises a shopper's order history.
type OrderStatistics struct {
	TotalOrders       int   `json:"total_orders"`
	CompletedOrders   int   `json:"completed_orders"`
	PendingOrders     int   `json:"pending_orders"`
	TotalSpent        int64 `json:"total_spent"`
	AverageOrderValue int64 `json:"average_order_value"`
}
