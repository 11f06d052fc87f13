package interfaces

import (
	"context"
	"encoding/json"

	"locotraq/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Status and payment updates are partial writes (DynamoDB update
// expressions); both return the full post-update order.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	UpdatePayment(ctx context.Context, id string, status entities.PaymentStatus, ref string, payloadRaw json.RawMessage) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}
