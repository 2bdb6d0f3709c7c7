package handler

import (
	"mediazone/internal/usecase"
	"mediazone/pkg/errors"
	"mediazone/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" validate:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Stock       int      `json:"stock"`
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.productUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing required fields", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing required fields", err))
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), map[string]interface{}{
		"title":       req.Title,
		"category":    req.Category,
		"price":       *req.Price,
		"description": req.Description,
		"image":       req.Image,
		"stock":       req.Stock,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	patch := map[string]interface{}{}
	if err := c.Bind(&patch); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, patch)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, map[string]interface{}{"success": true})
}
