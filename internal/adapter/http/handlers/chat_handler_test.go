package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"poolworks/internal/adapter/http/handlers/mocks"
	"poolworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChatHandler_PostMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"session_id":"s-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		uc.EXPECT().HandleMessage(gomock.Any(), "s-1", "hi").Return(usecase.ChatTurn{}, usecase.ErrInvalidMessage)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"session_id":"s-1","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		uc.EXPECT().HandleMessage(gomock.Any(), "s-1", "hi").Return(usecase.ChatTurn{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(`{"session_id":"s-1","message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChatUseCase(ctrl)
		h := NewChatHandler(uc)

		r := gin.New()
		r.POST("/v1/chat", h.PostMessage)

		uc.EXPECT().
			HandleMessage(gomock.Any(), "s-1", "I want a 600 sqft pool").
			Return(usecase.ChatTurn{Response: "Got it!", CanGenerateEstimate: true}, nil)

		body := `{"session_id":"s-1","message":"I want a 600 sqft pool"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got struct {
			Response            string `json:"response"`
			CanGenerateEstimate bool   `json:"can_generate_estimate"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got.Response != "Got it!" || !got.CanGenerateEstimate {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}
