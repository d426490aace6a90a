package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/adapter/http/middleware"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles the payment ledger of a service order.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RegisterPayment records one payment and its sale document.
func (h *PaymentHandler) RegisterPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	input := usecase.PaymentInput{
		Amount:         payload.Amount,
		Method:         strings.ToLower(strings.TrimSpace(payload.Method)),
		Kind:           entities.PaymentKind(strings.ToLower(strings.TrimSpace(payload.Kind))),
		Note:           payload.Note,
		IdempotencyKey: payload.IdempotencyKey,
	}

	payment, err := h.usecase.Register(c.Request.Context(), orderID, input, middleware.ActorFrom(c))
	if err != nil {
		log.Printf("[payment][handler] register failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] register success order_id=%s payment_id=%s amount=%.2f", orderID, payment.ID, payment.Amount)

	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// ListPayments returns every payment of the order, cancelled ones included.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	orderID := c.Param("order_id")

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// CancelPayment reverses one payment. Privileged roles only.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	actor := middleware.ActorFrom(c)

	payment, err := h.usecase.Cancel(c.Request.Context(), paymentID, actor)
	if err != nil {
		log.Printf("[payment][handler] cancel failed payment_id=%s actor=%s err=%v", paymentID, actor.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] cancel success payment_id=%s actor=%s", paymentID, actor.ID)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unknown payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentKind):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_KIND", "Payment kind must be entrada or final", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Actor is not allowed to cancel payments", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyCancelled):
		return pkg.NewDomainErrorSimple("ALREADY_CANCELLED", "Payment is already cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicatePayment):
		return pkg.NewDomainErrorSimple("DUPLICATE_PAYMENT", "Payment with this idempotency key was already registered", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
