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
	errInvalidStockPayload = pkg.NewDomainErrorSimple("INVALID_STOCK_INPUT", "Invalid stock adjustment payload", http.StatusBadRequest)
)

// StockHandler handles manual inventory corrections and the movement audit.

type StockHandler struct {
	usecase usecase.IStockLedgerUseCase
}

func NewStockHandler(uc usecase.IStockLedgerUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

// AdjustStock applies a manual correction through the same ledger path the
// order items use.
func (h *StockHandler) AdjustStock(c *gin.Context) {
	productID := c.Param("product_id")

	var payload request.StockAdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	movement, err := h.usecase.Adjust(c.Request.Context(), productID, payload.Delta, entities.StockReasonManualAdjust, actor, "")
	if err != nil {
		log.Printf("[stock][handler] adjust failed product_id=%s delta=%d err=%v", productID, payload.Delta, err)
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[stock][handler] adjust success product_id=%s qty=%d->%d", productID, movement.QtyBefore, movement.QtyAfter)

	c.JSON(http.StatusOK, response.FromStockMovement(movement))
}

// ListMovements returns the audit trail of one product.
func (h *StockHandler) ListMovements(c *gin.Context) {
	productID := c.Param("product_id")

	movements, err := h.usecase.Movements(c.Request.Context(), productID)
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockMovements(movements))
}

func mapStockError(err error) *pkg.AppError {
	var insufficient *usecase.InsufficientStockError
	switch {
	case errors.Is(err, usecase.ErrInvalidStockDelta):
		return pkg.NewDomainErrorSimple("INVALID_STOCK_INPUT", "Invalid stock adjustment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found in stock", http.StatusNotFound)
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
