package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.RegisterPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/os-1/payments", bytes.NewBufferString(`{"amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate idempotency key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.RegisterPayment)

		uc.EXPECT().Register(gomock.Any(), "os-1", gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrDuplicatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/os-1/payments", bytes.NewBufferString(`{"amount":100,"method":"pix","kind":"entrada","idempotency_key":"k-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "DUPLICATE_PAYMENT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success normalizes method and kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.RegisterPayment)

		uc.EXPECT().Register(gomock.Any(), "os-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ string, input usecase.PaymentInput, _ entities.Actor) (entities.Payment, error) {
				if input.Method != "pix" || input.Kind != entities.PaymentKindAdvance {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Payment{ID: "pay-1", OrderID: "os-1", Amount: input.Amount, Method: input.Method, Kind: input.Kind}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/os-1/payments", bytes.NewBufferString(`{"amount":100,"method":" PIX ","kind":"Entrada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_CancelPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthorized actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id/cancel", h.CancelPayment)

		uc.EXPECT().Cancel(gomock.Any(), "pay-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id/cancel", h.CancelPayment)

		uc.EXPECT().Cancel(gomock.Any(), "pay-1", gomock.Any()).Return(entities.Payment{}, usecase.ErrAlreadyCancelled)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "ALREADY_CANCELLED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id/cancel", h.CancelPayment)

		uc.EXPECT().Cancel(gomock.Any(), "pay-1", gomock.Any()).Return(entities.Payment{ID: "pay-1", OrderID: "os-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/orders/:order_id/payments", h.ListPayments)

	uc.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.Payment{
		{ID: "pay-1", OrderID: "os-1", Amount: 100},
		{ID: "pay-2", OrderID: "os-1", Amount: 50},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/os-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("expected 2 payments, got body: %s", w.Body.String())
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentKind, http.StatusBadRequest},
		{usecase.ErrUnauthorized, http.StatusForbidden},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrAlreadyCancelled, http.StatusConflict},
		{usecase.ErrDuplicatePayment, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
