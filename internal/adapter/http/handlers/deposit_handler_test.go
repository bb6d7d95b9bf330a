package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"poolworks/internal/adapter/http/handlers/mocks"
	"poolworks/internal/domain/entities"
	"poolworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDepositHandler_CollectDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body becomes empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:estimate_id", h.CollectDeposit)

		uc.EXPECT().
			CollectByEstimateID(gomock.Any(), "est-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.Deposit, error) {
				if string(payload) != "{}" {
					t.Fatalf("payload = %q, want {}", string(payload))
				}
				return entities.Deposit{ID: "dep-1", EstimateID: "est-1", Amount: 1765.4, Date: time.Now().UTC(), Status: entities.DepositStatusApproved}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("payload envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:estimate_id", h.CollectDeposit)

		uc.EXPECT().
			CollectByEstimateID(gomock.Any(), "est-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.Deposit, error) {
				var got map[string]any
				if err := json.Unmarshal(payload, &got); err != nil {
					t.Fatalf("invalid payload forwarded: %v", err)
				}
				if got["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %v", got)
				}
				return entities.Deposit{ID: "dep-1", EstimateID: "est-1", Status: entities.DepositStatusApproved}, nil
			})

		body := `{"payment_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/est-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:estimate_id", h.CollectDeposit)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/est-1", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("estimate not approved maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:estimate_id", h.CollectDeposit)

		uc.EXPECT().
			CollectByEstimateID(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.Deposit{}, usecase.ErrEstimateNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/est-1", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:estimate_id", h.CollectDeposit)

		uc.EXPECT().
			CollectByEstimateID(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.Deposit{}, usecase.ErrPaymentGatewayNotReady)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/est-1", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestDepositHandler_GetDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.GET("/v1/deposits/:estimate_id", h.GetDeposit)

		uc.EXPECT().GetLatestByEstimateID(gomock.Any(), "est-404").Return(entities.Deposit{}, usecase.ErrDepositNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/est-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.GET("/v1/deposits/:estimate_id", h.GetDeposit)

		uc.EXPECT().
			GetLatestByEstimateID(gomock.Any(), "est-1").
			Return(entities.Deposit{ID: "dep-1", EstimateID: "est-1", Amount: 1765.4, Status: entities.DepositStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got struct {
			DepositID string  `json:"deposit_id"`
			Amount    float64 `json:"amount"`
			Status    string  `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.DepositID != "dep-1" || got.Amount != 1765.4 || got.Status != "approved" {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}
