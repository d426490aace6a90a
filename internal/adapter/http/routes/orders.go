package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
	PathProducts = "/products"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.ServiceOrderHandler,
	itemHandler *handlers.OrderItemHandler,
	paymentHandler *handlers.PaymentHandler,
	checklistHandler *handlers.ChecklistHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id/status", orderHandler.ChangeStatus)

		orders.PUT("/:order_id/checklists/entry", checklistHandler.CompleteEntry)
		orders.PUT("/:order_id/checklists/exit", checklistHandler.CompleteExit)

		orders.POST("/:order_id/items", itemHandler.AddItem)
		orders.GET("/:order_id/items", itemHandler.ListItems)
		orders.PUT("/:order_id/items/:item_id", itemHandler.UpdateItem)
		orders.DELETE("/:order_id/items/:item_id", itemHandler.RemoveItem)

		orders.POST("/:order_id/payments", paymentHandler.RegisterPayment)
		orders.GET("/:order_id/payments", paymentHandler.ListPayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.PATCH("/:payment_id/cancel", paymentHandler.CancelPayment)
	}
}

func addStockRoutes(rg *gin.RouterGroup, stockHandler *handlers.StockHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("/:product_id/stock/adjust", stockHandler.AdjustStock)
		products.GET("/:product_id/movements", stockHandler.ListMovements)
	}
}
