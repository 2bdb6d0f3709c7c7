package router

import (
	"github.com/labstack/echo/v4"

	"mediazone/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.POST("", productHandler.CreateProduct)
	products.GET("/:id", productHandler.GetProduct)
	products.PATCH("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)
}
