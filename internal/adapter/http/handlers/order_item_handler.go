package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/adapter/http/middleware"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
)

// OrderItemHandler handles the line items of a service order.

type OrderItemHandler struct {
	usecase usecase.IOrderItemUseCase
}

func NewOrderItemHandler(uc usecase.IOrderItemUseCase) *OrderItemHandler {
	return &OrderItemHandler{usecase: uc}
}

func (h *OrderItemHandler) AddItem(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddItem(c.Request.Context(), orderID, payload.ToSpec(), middleware.ActorFrom(c))
	if err != nil {
		log.Printf("[item][handler] add failed order_id=%s err=%v", orderID, err)
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[item][handler] add success order_id=%s item_id=%s total=%.2f", orderID, item.ID, item.Total)

	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

func (h *OrderItemHandler) UpdateItem(c *gin.Context) {
	orderID := c.Param("order_id")
	itemID := c.Param("item_id")

	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), orderID, itemID, payload.ToSpec(), middleware.ActorFrom(c))
	if err != nil {
		log.Printf("[item][handler] update failed order_id=%s item_id=%s err=%v", orderID, itemID, err)
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[item][handler] update success order_id=%s item_id=%s total=%.2f", orderID, itemID, item.Total)

	c.JSON(http.StatusOK, response.FromLineItem(item))
}

func (h *OrderItemHandler) RemoveItem(c *gin.Context) {
	orderID := c.Param("order_id")
	itemID := c.Param("item_id")

	if err := h.usecase.RemoveItem(c.Request.Context(), orderID, itemID, middleware.ActorFrom(c)); err != nil {
		log.Printf("[item][handler] remove failed order_id=%s item_id=%s err=%v", orderID, itemID, err)
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[item][handler] remove success order_id=%s item_id=%s", orderID, itemID)

	c.Status(http.StatusNoContent)
}

func (h *OrderItemHandler) ListItems(c *gin.Context) {
	orderID := c.Param("order_id")

	items, err := h.usecase.ListItems(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItems(items))
}

func mapItemError(err error) *pkg.AppError {
	var insufficient *usecase.InsufficientStockError
	switch {
	case errors.Is(err, usecase.ErrEmptyDescription),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidItemKind):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is already in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrItemBindingImmutable):
		return pkg.NewDomainErrorSimple("ITEM_BINDING_IMMUTABLE", "Item kind and product binding cannot change", http.StatusConflict)
	case errors.As(err, &insufficient):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", insufficient.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Insufficient stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrStockConflict):
		return pkg.NewDomainErrorSimple("STOCK_CONFLICT", "Stock changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
