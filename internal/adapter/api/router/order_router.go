package router

import (
	"github.com/labstack/echo/v4"

	"mediazone/internal/adapter/api/handler"
)

func SetupOrderRouter(e *echo.Echo) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/orders")
	orders.GET("", orderHandler.ListOrders)
	orders.POST("", orderHandler.CreateOrder)
	orders.PATCH("/:id", orderHandler.UpdateOrder)
	orders.GET("/:id/whatsapp", orderHandler.WhatsAppLink)
}
