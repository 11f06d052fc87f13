package request

import (
	"encoding/json"

	"locotraq/internal/domain/entities"
)

type OrderItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// OrderRequest is the checkout payload creating an order.
type OrderRequest struct {
	Customer struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"customer"`
	Items  []OrderItemRequest `json:"items"`
	Amount float64            `json:"amount"`
}

func (r OrderRequest) ToEntity() entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return entities.Order{
		Customer: entities.Customer{
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
		},
		Items:  items,
		Amount: r.Amount,
	}
}

// OrderStatusRequest carries the partial body of a status change. Advance
// moves the order one step through the cycle; an empty status without the
// flag is treated the same way.
type OrderStatusRequest struct {
	Status  string `json:"status"`
	Advance bool   `json:"advance"`
}

// OrderPaymentRequest carries the raw gateway payload for payment
// confirmation. Stored as-is to support varying provider schemas.
type OrderPaymentRequest struct {
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
