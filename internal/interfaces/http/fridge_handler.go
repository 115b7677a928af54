package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/usecase"
)

// FridgeHandler préstamos de refrigeradores a clientes.
type FridgeHandler struct {
	uc *usecase.FridgeLoanUseCase
}

// NewFridgeHandler construye el handler.
func NewFridgeHandler(uc *usecase.FridgeLoanUseCase) *FridgeHandler {
	return &FridgeHandler{uc: uc}
}

// Lend POST /api/fridge-loans
func (h *FridgeHandler) Lend(c *fiber.Ctx) error {
	var in dto.LendFridgeRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.Lend(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/fridge-loans?customer_id=
func (h *FridgeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("customer_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// Return POST /api/fridge-loans/:id/return
func (h *FridgeHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnFridgeRequest
	if len(c.Body()) > 0 {
		if ok, err := bind(c, &in); !ok {
			return err
		}
	}
	out, err := h.uc.Return(c.Context(), c.Params("id"), in.Date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
