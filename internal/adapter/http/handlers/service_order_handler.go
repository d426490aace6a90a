package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/adapter/http/middleware"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the order lifecycle.

type ServiceOrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateOrder opens a new service order with the next sequence number.
func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	input := usecase.OrderInput{
		CustomerID:     payload.CustomerID,
		CustomerName:   payload.CustomerName,
		CustomerPhone:  payload.CustomerPhone,
		DeviceBrand:    payload.DeviceBrand,
		DeviceModel:    payload.DeviceModel,
		DeviceSerial:   payload.DeviceSerial,
		Problem:        payload.Problem,
		BudgetAmount:   payload.BudgetAmount,
		BudgetApproved: payload.BudgetApproved,
	}

	order, err := h.usecase.Create(c.Request.Context(), input, middleware.ActorFrom(c))
	if err != nil {
		log.Printf("[order][handler] create failed customer=%s err=%v", payload.CustomerName, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s number=%d", order.ID, order.Number)

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// GetOrder returns one order with totals, balance and checklists.
func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// ChangeStatus applies a non-terminal transition. Terminal targets are
// rejected with CHECKLIST_REQUIRED; the client retries through the exit
// checklist endpoint.
func (h *ServiceOrderHandler) ChangeStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	target := entities.OrderStatus(payload.ResolveStatus())
	order, err := h.usecase.ChangeStatus(c.Request.Context(), orderID, target, middleware.ActorFrom(c))
	if err != nil {
		log.Printf("[order][handler] status change failed order_id=%s target=%s err=%v", orderID, target, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] status change success order_id=%s status=%s", orderID, order.Status)

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown status label", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotTerminalStatus):
		return pkg.NewDomainErrorSimple("NOT_TERMINAL_STATUS", "Status does not close the order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownChecklistItem):
		return pkg.NewDomainErrorSimple("UNKNOWN_CHECKLIST_ITEM", "Unknown checklist item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChecklistIncomplete):
		return pkg.NewDomainErrorSimple("CHECKLIST_UNDECIDED", "Exit checklist has no approval decision", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExitChecklistRequired):
		return pkg.NewDomainErrorSimple("CHECKLIST_REQUIRED", "Terminal status requires the exit checklist", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is already in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Order status changed concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
