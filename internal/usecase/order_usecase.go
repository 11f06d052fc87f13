package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound               = errors.New("order not found")
	ErrInvalidOrderID              = errors.New("invalid order id")
	ErrInvalidOrderStatus          = errors.New("invalid order status")
	ErrOrderAlreadyPaid            = errors.New("order already paid")
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// IOrderUseCase exposes admin order operations.
//
// AdvanceStatus moves an order one step through the fixed fulfillment cycle.
// It intentionally performs no transition validation; see
// entities.OrderStatus.

type IOrderUseCase interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, draft entities.Order) (entities.Order, error)
	SetStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	AdvanceStatus(ctx context.Context, id string) (entities.Order, error)
	ConfirmPayment(ctx context.Context, id string, gatewayPayload json.RawMessage) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	log     *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, log *zap.Logger) *OrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderUseCase{repo: repo, gateway: gateway, log: log}
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) Create(ctx context.Context, draft entities.Order) (entities.Order, error) {
	if err := draft.Validate(); err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.Status = entities.OrderStatusPending
	draft.PaymentStatus = entities.PaymentStatusPending
	draft.CreatedAt = now
	draft.UpdatedAt = now
	return u.repo.Create(ctx, draft)
}

func (u *OrderUseCase) SetStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !validOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) AdvanceStatus(ctx context.Context, id string) (entities.Order, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return u.SetStatus(ctx, id, current.Status.Next())
}

// ConfirmPayment charges an order through the payment gateway and records
// the outcome. The charge amount always comes from the stored order, never
// from the caller's payload.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, id string, gatewayPayload json.RawMessage) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return entities.Order{}, ErrPaymentGatewayNotConfigured
	}
	if len(gatewayPayload) == 0 {
		gatewayPayload = json.RawMessage("{}")
	}
	if !json.Valid(gatewayPayload) {
		return entities.Order{}, ErrInvalidPaymentPayload
	}

	order, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Order{}, ErrOrderAlreadyPaid
	}

	// Provider payloads vary; enrich as a map instead of a fixed struct.
	// external_reference links the provider charge back to the order.
	var reqMap map[string]any
	if err := json.Unmarshal(gatewayPayload, &reqMap); err != nil {
		return entities.Order{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Locotraq order %s", order.ID)
	}
	reqMap["transaction_amount"] = order.Amount
	if b, err := json.Marshal(reqMap); err == nil {
		gatewayPayload = b
	}

	u.log.Info("confirming order payment",
		zap.String("order_id", order.ID),
		zap.Float64("amount", order.Amount))

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, gatewayPayload)
	if err != nil {
		u.log.Error("payment gateway call failed", zap.String("order_id", order.ID), zap.Error(err))
		return entities.Order{}, err
	}

	paymentStatus := entities.PaymentStatusFailed
	if providerStatus == "approved" {
		paymentStatus = entities.PaymentStatusPaid
	}

	updated, err := u.repo.UpdatePayment(ctx, order.ID, paymentStatus, providerID, providerResp)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.log.Info("order payment recorded",
		zap.String("order_id", order.ID),
		zap.String("provider_payment_id", providerID),
		zap.String("payment_status", string(paymentStatus)))
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrOrderNotFound
	}
	return u.repo.Delete(ctx, id)
}

func validOrderStatus(s entities.OrderStatus) bool {
	switch s {
	case entities.OrderStatusPending, entities.OrderStatusConfirmed, entities.OrderStatusProcessing,
		entities.OrderStatusShipped, entities.OrderStatusDelivered:
		return true
	}
	return false
}
