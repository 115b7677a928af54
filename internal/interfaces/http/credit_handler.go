package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/credit"
	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/receipts"
)

// CreditHandler pagarés, créditos y abonos.
type CreditHandler struct {
	ledger   *credit.Ledger
	receipts *receipts.UseCase
}

// NewCreditHandler construye el handler.
func NewCreditHandler(ledger *credit.Ledger, rc *receipts.UseCase) *CreditHandler {
	return &CreditHandler{ledger: ledger, receipts: rc}
}

// IssueNote godoc
// @Summary      Emitir pagaré
// @Description  El monto no puede exceder el saldo del cliente. No modifica el saldo.
// @Tags         credit
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueNoteRequest  true  "Pagaré"
// @Success      201   {object}  dto.PromissoryNoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/promissory-notes [post]
func (h *CreditHandler) IssueNote(c *fiber.Ctx) error {
	var in dto.IssueNoteRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	n, err := h.ledger.IssuePromissoryNote(c.Context(), in.CustomerID, in.Amount, in.DueDate, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromPromissoryNote(n))
}

// SetNoteStatus PUT /api/promissory-notes/:id/status
func (h *CreditHandler) SetNoteStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	n, err := h.ledger.SetPromissoryNoteStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromPromissoryNote(n))
}

// NotePDF GET /api/promissory-notes/:id/pdf
func (h *CreditHandler) NotePDF(c *fiber.Ctx) error {
	data, filename, err := h.receipts.PromissoryNote(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, data, filename)
}

// DeleteNote DELETE /api/promissory-notes/:id (requiere X-Confirm-Token)
func (h *CreditHandler) DeleteNote(c *fiber.Ctx) error {
	if err := h.ledger.DeletePromissoryNote(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCredit POST /api/credits
func (h *CreditHandler) CreateCredit(c *fiber.Ctx) error {
	var in dto.CreateCreditRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	cr, err := h.ledger.CreateCredit(c.Context(), in.CustomerID, in.Amount, in.Date, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCredit(cr))
}

// GetCredit GET /api/credits/:id
func (h *CreditHandler) GetCredit(c *fiber.Ctx) error {
	cr, err := h.ledger.GetCredit(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromCredit(cr))
}

// RecordPayment godoc
// @Summary      Registrar abono
// @Description  El restante se calcula como monto menos abonos, con mínimo cero. No cambia el estado.
// @Tags         credit
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del crédito"
// @Param        body  body  dto.CreditPaymentRequest  true  "Abono"
// @Success      201   {object}  dto.CreditResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credits/{id}/payments [post]
func (h *CreditHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.CreditPaymentRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	cr, err := h.ledger.RecordCreditPayment(c.Context(), c.Params("id"), in.Amount, in.Date, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCredit(cr))
}

// SetCreditStatus PUT /api/credits/:id/status
func (h *CreditHandler) SetCreditStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	cr, err := h.ledger.SetCreditStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromCredit(cr))
}

// DeleteCredit DELETE /api/credits/:id (requiere X-Confirm-Token)
func (h *CreditHandler) DeleteCredit(c *fiber.Ctx) error {
	if err := h.ledger.DeleteCredit(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePayment DELETE /api/credits/:id/payments/:paymentId (requiere X-Confirm-Token)
func (h *CreditHandler) DeletePayment(c *fiber.Ctx) error {
	cr, err := h.ledger.DeleteCreditPayment(c.Context(), c.Params("id"), c.Params("paymentId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromCredit(cr))
}
