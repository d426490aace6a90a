package handlers

import (
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
	errInvalidChecklistPayload = pkg.NewDomainErrorSimple("INVALID_CHECKLIST_INPUT", "Invalid checklist payload", http.StatusBadRequest)
)

// ChecklistHandler handles the intake and delivery inspections. The exit
// checklist travels with the terminal transition, so this handler also
// drives Finalize on the order usecase.

type ChecklistHandler struct {
	checklists usecase.IChecklistUseCase
	orders     usecase.IOrderUseCase
}

func NewChecklistHandler(checklists usecase.IChecklistUseCase, orders usecase.IOrderUseCase) *ChecklistHandler {
	return &ChecklistHandler{checklists: checklists, orders: orders}
}

// CompleteEntry records the intake inspection. The first completion queues
// the two-copy order print.
func (h *ChecklistHandler) CompleteEntry(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.EntryChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	input := usecase.ChecklistInput{
		MarkedItems: payload.MarkedItems,
		Notes:       payload.Notes,
	}

	order, err := h.checklists.CompleteEntry(c.Request.Context(), orderID, input, middleware.ActorFrom(c))
	if err != nil {
		log.Printf("[checklist][handler] entry failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checklist][handler] entry success order_id=%s", orderID)

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// CompleteExit records the delivery inspection and applies the terminal
// status in the same conditional write.
func (h *ChecklistHandler) CompleteExit(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.ExitChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChecklistPayload.HTTPStatus, errInvalidChecklistPayload.ToHTTPError())
		return
	}

	target := entities.OrderStatus(payload.ResolveStatus())
	input := usecase.ExitChecklistInput{
		MarkedItems: payload.MarkedItems,
		Notes:       payload.Notes,
		Approved:    payload.Approved,
	}

	order, err := h.orders.Finalize(c.Request.Context(), orderID, target, input, middleware.ActorFrom(c))
	if err != nil {
		log.Printf("[checklist][handler] exit failed order_id=%s target=%s err=%v", orderID, target, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checklist][handler] exit success order_id=%s status=%s", orderID, order.Status)

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
