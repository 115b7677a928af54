package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/domain"
)

// HeaderConfirmToken lleva el token emitido por POST /api/pin/verify.
const HeaderConfirmToken = "X-Confirm-Token"

// TokenValidator valida tokens de confirmación (pin.Gate).
type TokenValidator interface {
	ValidateToken(token string) error
}

// ConfirmMiddleware exige un token de confirmación vigente antes de una operación destructiva.
func ConfirmMiddleware(v TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(HeaderConfirmToken))
		if token == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "CONFIRMATION_REQUIRED", Message: HeaderConfirmToken + " requerido",
			})
		}
		if err := v.ValidateToken(token); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: domain.CodePINInvalid, Message: "confirmación inválida o expirada",
			})
		}
		return c.Next()
	}
}
