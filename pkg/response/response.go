package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "mediazone/pkg/errors"
)

// The storefront API speaks plain JSON: success responses are the bare
// resource, failures are {"error": message}. This mirrors what the admin
// dashboard and storefront pages already consume.

type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "gte":
			message = field + " must be at least " + err.Param()
		case "oneof":
			message = field + " must be one of: " + err.Param()
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{Error: "invalid input data"})
}
