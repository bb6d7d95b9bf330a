package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"poolworks/internal/adapter/http/handlers/mocks"
	"poolworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInventoryHandler_CheckInventory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/inventory/check", h.CheckInventory)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/check", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/inventory/check", h.CheckInventory)

		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/check", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/inventory/check", h.CheckInventory)

		uc.EXPECT().
			CheckAvailability(gomock.Any(), []entities.InventoryItem{{Name: "CONCRETE", Quantity: 8, Unit: "cubic yards"}}).
			Return([]entities.InventoryAvailability{
				{
					InventoryItem:     entities.InventoryItem{Name: "CONCRETE", Quantity: 8, Unit: "cubic yards"},
					InStock:           true,
					AvailableQuantity: 120,
					LeadTime:          "In stock",
				},
			}, nil)

		body := `{"items":[{"name":"CONCRETE","quantity":8,"unit":"cubic yards"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inventory/check", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got struct {
			Items []struct {
				Name     string `json:"name"`
				InStock  bool   `json:"in_stock"`
				LeadTime string `json:"lead_time"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].Name != "CONCRETE" || !got.Items[0].InStock {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}
