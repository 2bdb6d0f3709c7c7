package handler

import (
	"mediazone/internal/infrastructure/firebase"
	"mediazone/pkg/errors"
	"mediazone/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authClient *firebase.AuthClient
}

func NewAuthHandler(authClient *firebase.AuthClient) *AuthHandler {
	return &AuthHandler{
		authClient: authClient,
	}
}

type adminLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// AdminLogin verifies an identity-provider ID token for the back office.
// Token issuance happens entirely on the provider's side; this endpoint only
// confirms the token is good.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid, email, err := h.authClient.VerifyToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid token", err))
	}

	return response.JSON(c, map[string]interface{}{
		"uid":   uid,
		"email": email,
	})
}

// Me echoes the authenticated admin's uid, set by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	return response.JSON(c, map[string]interface{}{"uid": uid})
}
