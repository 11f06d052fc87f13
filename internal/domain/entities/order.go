package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// OrderStatus is the fulfillment state of a customer order.
//
// The admin dashboard advances status one step at a time through a fixed
// forward cycle. This is a UI convenience, not a guarded state machine:
// there is no transition check, and advancing past "delivered" (or from an
// unrecognized value) wraps back to "pending".
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

var orderStatusCycle = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// Next returns the following status in the fulfillment cycle, wrapping back
// to pending after delivered or from an unrecognized status.
func (s OrderStatus) Next() OrderStatus {
	for i, st := range orderStatusCycle {
		if st == s {
			return orderStatusCycle[(i+1)%len(orderStatusCycle)]
		}
	}
	return OrderStatusPending
}

// PaymentStatus is the payment outcome for an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Customer is the buyer contact embedded in an order.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderItem is a purchased product line.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Order is a customer purchase managed through the admin dashboard.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Payment gateway payload:
//   - GatewayPayloadRaw keeps the original provider response (JSON) for
//     traceability when a payment is confirmed through the gateway.
type Order struct {
	ID            string        `json:"id"`
	Customer      Customer      `json:"customer"`
	Items         []OrderItem   `json:"items"`
	Amount        float64       `json:"amount"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentRef    string        `json:"paymentRef,omitempty"`

	GatewayPayloadRaw json.RawMessage `json:"gatewayPayloadRaw,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o Order) ResourceID() string { return o.ID }

func (o Order) AssetID() string { return "" }

// Validate checks required fields in a fixed order and returns the first
// violation.
func (o Order) Validate() error {
	if strings.TrimSpace(o.Customer.Name) == "" {
		return missingField("customer.name")
	}
	if strings.TrimSpace(o.Customer.Email) == "" {
		return missingField("customer.email")
	}
	if len(o.Items) == 0 {
		return invalidField("items", "at least one item is required")
	}
	if o.Amount <= 0 {
		return invalidField("amount", "must be greater than zero")
	}
	return nil
}
