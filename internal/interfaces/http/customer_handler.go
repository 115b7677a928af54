package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/credit"
	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/usecase"
)

// CustomerHandler clientes, su saldo y sus documentos de crédito.
type CustomerHandler struct {
	uc     *usecase.CustomerUseCase
	credit *credit.Ledger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, creditLedger *credit.Ledger) *CustomerHandler {
	return &CustomerHandler{uc: uc, credit: creditLedger}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/customers?all=true
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("all", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deactivate POST /api/customers/:id/deactivate
func (h *CustomerHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetBalance godoc
// @Summary      Ajuste administrativo del saldo
// @Description  Fija el saldo sin validar contra el límite de crédito.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.SetBalanceRequest  true  "Nuevo saldo"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/balance [put]
func (h *CustomerHandler) SetBalance(c *fiber.Ctx) error {
	var in dto.SetBalanceRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	cust, err := h.credit.SetCustomerBalance(c.Context(), c.Params("id"), in.Balance)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromCustomer(cust))
}

// PromissoryNotes GET /api/customers/:id/promissory-notes
func (h *CustomerHandler) PromissoryNotes(c *fiber.Ctx) error {
	list, err := h.credit.ListPromissoryNotes(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(dto.Map(list, dto.FromPromissoryNote)))
}

// Credits GET /api/customers/:id/credits
func (h *CustomerHandler) Credits(c *fiber.Ctx) error {
	list, err := h.credit.ListCredits(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(dto.Map(list, dto.FromCredit)))
}
