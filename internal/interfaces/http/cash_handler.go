package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/cash"
	"github.com/hedelmia/pos-api/internal/application/dto"
)

// CashHandler caja chica y caja grande.
type CashHandler struct {
	ledger *cash.Ledger
}

// NewCashHandler construye el handler.
func NewCashHandler(ledger *cash.Ledger) *CashHandler {
	return &CashHandler{ledger: ledger}
}

// PostMovement godoc
// @Summary      Registrar movimiento manual de caja
// @Tags         cash
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.CashMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash/movements [post]
func (h *CashHandler) PostMovement(c *fiber.Ctx) error {
	var in dto.CashMovementRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	m, err := h.ledger.PostMovement(c.Context(), in.Box, in.Kind, in.Concept, in.Amount, in.Date)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCashMovement(m))
}

// ListMovements GET /api/cash/movements?box=chica|grande&from=&to=
func (h *CashHandler) ListMovements(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return badRequest(c, "INVALID_DATE", "from debe ser YYYY-MM-DD")
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return badRequest(c, "INVALID_DATE", "to debe ser YYYY-MM-DD")
	}
	list, err := h.ledger.ListMovements(c.Context(), c.Query("box"), from, endOfDay(to))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(dto.Map(list, dto.FromCashMovement)))
}

// Balance godoc
// @Summary      Saldo de ambas cajas
// @Description  Se recalcula del historial en cada consulta.
// @Tags         cash
// @Produce      json
// @Success      200  {object}  dto.CashBalanceResponse
// @Router       /api/cash/balance [get]
func (h *CashHandler) Balance(c *fiber.Ctx) error {
	s, err := h.ledger.Summary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CashBalanceResponse{Chica: s.Chica, Grande: s.Grande})
}

// DeleteMovement DELETE /api/cash/movements/:id (requiere X-Confirm-Token)
func (h *CashHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.ledger.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
