package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"locotraq/internal/domain/entities"
	mock_interfaces "locotraq/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrderDraft() entities.Order {
	return entities.Order{
		Customer: entities.Customer{Name: "Ana Souza", Email: "ana@example.com"},
		Items: []entities.OrderItem{
			{ProductID: "p1", ProductName: "LT-200 OBD Tracker", Quantity: 2, UnitPrice: 129.90},
		},
		Amount: 259.80,
	}
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("validation order reports customer name first", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		draft := validOrderDraft()
		draft.Customer.Name = ""
		draft.Customer.Email = ""

		_, err := uc.Create(context.Background(), draft)
		var ve *entities.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Field != "customer.name" {
			t.Fatalf("expected customer.name violation, got %q", ve.Field)
		}
	})

	t.Run("forces pending statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusPending {
					t.Fatalf("expected pending status, got %s", o.Status)
				}
				if o.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected pending payment, got %s", o.PaymentStatus)
				}
				return o, nil
			})

		draft := validOrderDraft()
		draft.Status = entities.OrderStatusDelivered
		draft.PaymentStatus = entities.PaymentStatusPaid
		if _, err := uc.Create(context.Background(), draft); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_SetStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.SetStatus(context.Background(), "o-1", entities.OrderStatus("teleported"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusShipped).Return(entities.Order{}, nil)

		_, err := uc.SetStatus(context.Background(), "o-1", entities.OrderStatusShipped)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_AdvanceStatus(t *testing.T) {
	cases := []struct {
		current, next entities.OrderStatus
	}{
		{entities.OrderStatusPending, entities.OrderStatusConfirmed},
		{entities.OrderStatusShipped, entities.OrderStatusDelivered},
		{entities.OrderStatusDelivered, entities.OrderStatusPending},
		{entities.OrderStatus("weird"), entities.OrderStatusPending},
	}
	for _, tc := range cases {
		t.Run(string(tc.current), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, nil)

			current := validOrderDraft()
			current.ID = "o-1"
			current.Status = tc.current
			advanced := current
			advanced.Status = tc.next

			repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(current, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "o-1", tc.next).Return(advanced, nil)

			got, err := uc.AdvanceStatus(context.Background(), "o-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tc.next {
				t.Fatalf("expected %s, got %s", tc.next, got.Status)
			}
		})
	}
}

func TestOrderUseCase_ConfirmPayment(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.ConfirmPayment(context.Background(), "o-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(nil, gateway, nil)

		_, err := uc.ConfirmPayment(context.Background(), "o-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(repo, gateway, nil)

		paid := validOrderDraft()
		paid.ID = "o-1"
		paid.PaymentStatus = entities.PaymentStatusPaid

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(paid, nil)

		_, err := uc.ConfirmPayment(context.Background(), "o-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("approved charge marks the order paid with the stored amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(repo, gateway, nil)

		order := validOrderDraft()
		order.ID = "o-1"
		paid := order
		paid.PaymentStatus = entities.PaymentStatusPaid
		paid.PaymentRef = "mp-123"

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("invalid enriched payload: %v", err)
				}
				if m["external_reference"] != "o-1" {
					t.Fatalf("expected external_reference o-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != order.Amount {
					t.Fatalf("amount must come from the stored order, got %v", m["transaction_amount"])
				}
				return "mp-123", "approved", json.RawMessage(`{"status":"approved"}`), nil
			})
		repo.EXPECT().UpdatePayment(gomock.Any(), "o-1", entities.PaymentStatusPaid, "mp-123", gomock.Any()).Return(paid, nil)

		got, err := uc.ConfirmPayment(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected paid, got %s", got.PaymentStatus)
		}
	})

	t.Run("rejected charge marks the payment failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderUseCase(repo, gateway, nil)

		order := validOrderDraft()
		order.ID = "o-1"
		failed := order
		failed.PaymentStatus = entities.PaymentStatusFailed

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "o-1", entities.PaymentStatusFailed, "mp-9", gomock.Any()).Return(failed, nil)

		got, err := uc.ConfirmPayment(context.Background(), "o-1", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusFailed {
			t.Fatalf("expected failed, got %s", got.PaymentStatus)
		}
	})
}
