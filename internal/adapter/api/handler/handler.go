package handler

import (
	"mediazone/internal/usecase"
)

var (
	productHandler *ProductHandler
	orderHandler   *OrderHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
) {
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}
