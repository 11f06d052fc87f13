package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"locotraq/internal/adapter/http/handlers/mocks"
	"locotraq/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_Estimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/api/quote/estimate", h.Estimate)

	uc.EXPECT().Estimate(entities.QuoteSelection{
		TrackingType: entities.TrackingTypeFleet,
		DeviceCount:  "10-19",
		Services:     []entities.AddOnService{entities.AddOnInstallation},
	}).Return(45000)

	body := `{"trackingType":"fleet","deviceCount":"10-19","services":["installation"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/quote/estimate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out struct {
		Success bool `json:"success"`
		Data    struct {
			EstimatedCost int `json:"estimatedCost"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !out.Success || out.Data.EstimatedCost != 45000 {
		t.Fatalf("unexpected estimate envelope: %+v", out)
	}
}

func TestQuoteHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quote/submit", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, &entities.ValidationError{Field: "name", Message: "is required"})

		req := httptest.NewRequest(http.MethodPost, "/api/quote/submit", bytes.NewBufferString(`{"email":"ana@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created lead is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quote/submit", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{
			ID:            "q-1",
			Name:          "Ana",
			Email:         "ana@example.com",
			EstimatedCost: 45000,
		}, nil)

		body := `{"name":"Ana","email":"ana@example.com","trackingType":"fleet","deviceCount":"10-19","services":["installation"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/quote/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var out struct {
			Data struct {
				ID            string `json:"id"`
				EstimatedCost int    `json:"estimatedCost"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if out.Data.ID != "q-1" || out.Data.EstimatedCost != 45000 {
			t.Fatalf("unexpected submit envelope: %+v", out)
		}
	})
}

func TestQuoteHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/api/admin/quotes", h.List)

	uc.EXPECT().List(gomock.Any()).Return([]entities.QuoteRequest{{ID: "q-1"}, {ID: "q-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(out.Data) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(out.Data))
	}
}
