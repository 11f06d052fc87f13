package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"locotraq/internal/adapter/http/handlers/mocks"
	"locotraq/internal/domain/entities"
	"locotraq/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty status advances one step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/api/admin/orders/:id/status", h.SetStatus)

		uc.EXPECT().AdvanceStatus(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/o-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("advance flag advances one step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/api/admin/orders/:id/status", h.SetStatus)

		uc.EXPECT().AdvanceStatus(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/o-1/status", bytes.NewBufferString(`{"advance":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("explicit status is set directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/api/admin/orders/:id/status", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "o-1", entities.OrderStatusShipped).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusShipped}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/api/admin/orders/:id/status", h.SetStatus)

		uc.EXPECT().SetStatus(gomock.Any(), "o-1", entities.OrderStatus("teleported")).Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/o-1/status", bytes.NewBufferString(`{"status":"teleported"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already paid maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/orders/:id/payment", h.ConfirmPayment)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "o-1", gomock.Any()).Return(entities.Order{}, usecase.ErrOrderAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/o-1/payment", bytes.NewBufferString(`{"gateway_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway missing maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/orders/:id/payment", h.ConfirmPayment)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "o-1", gomock.Any()).Return(entities.Order{}, usecase.ErrPaymentGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/o-1/payment", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("paid order comes back in the envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/orders/:id/payment", h.ConfirmPayment)

		uc.EXPECT().ConfirmPayment(gomock.Any(), "o-1", gomock.Any()).Return(entities.Order{ID: "o-1", PaymentStatus: entities.PaymentStatusPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/o-1/payment", bytes.NewBufferString(`{"gateway_payload":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool           `json:"success"`
			Data    entities.Order `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Data.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected paid order, got %+v", body.Data)
		}
	})
}
