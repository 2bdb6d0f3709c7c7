package handler

import (
	"mediazone/internal/usecase"
	"mediazone/pkg/errors"
	"mediazone/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, orders)
}

// CreateOrder accepts the checkout payload as-is: line-item snapshots,
// customer fields, payment proof reference and the cart's total.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	data := map[string]interface{}{}
	if err := c.Bind(&data); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), data)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id := c.Param("id")

	patch := map[string]interface{}{}
	if err := c.Bind(&patch); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	order, err := h.orderUseCase.UpdateOrder(c.Request().Context(), id, patch)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, order)
}

// WhatsAppLink returns the checkout handoff deep link for an order.
func (h *OrderHandler) WhatsAppLink(c echo.Context) error {
	id := c.Param("id")

	url, err := h.orderUseCase.WhatsAppLink(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, map[string]interface{}{"url": url})
}
