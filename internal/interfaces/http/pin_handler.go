package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/pin"
)

// PINHandler configuración y verificación del PIN de confirmación.
type PINHandler struct {
	gate *pin.Gate
}

// NewPINHandler construye el handler.
func NewPINHandler(gate *pin.Gate) *PINHandler {
	return &PINHandler{gate: gate}
}

// Status GET /api/pin/status
func (h *PINHandler) Status(c *fiber.Ctx) error {
	ok, err := h.gate.IsSet(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.PINStatusResponse{Configured: ok})
}

// Set PUT /api/pin
func (h *PINHandler) Set(c *fiber.Ctx) error {
	var in dto.SetPINRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	if err := h.gate.SetPIN(c.Context(), in.Current, in.PIN); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Verify godoc
// @Summary      Verificar PIN
// @Description  Devuelve un token de corta duración para enviar en X-Confirm-Token
// @Description  en las operaciones destructivas.
// @Tags         pin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyPINRequest  true  "PIN"
// @Success      200   {object}  dto.ConfirmationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/pin/verify [post]
func (h *PINHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyPINRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	conf, err := h.gate.Verify(c.Context(), in.PIN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ConfirmationResponse{Token: conf.Token, ExpiresAt: conf.ExpiresAt})
}
