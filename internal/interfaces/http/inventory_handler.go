package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/inventory"
	"github.com/hedelmia/pos-api/internal/application/usecase"
)

// MaterialHandler materias primas (azúcar, fruta, leche...) y sus movimientos.
type MaterialHandler struct {
	uc        *usecase.MaterialUseCase
	inventory *inventory.Ledger
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase, inv *inventory.Ledger) *MaterialHandler {
	return &MaterialHandler{uc: uc, inventory: inv}
}

// Create POST /api/materials
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/materials/:id
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/materials
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// Update PUT /api/materials/:id
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Entrada o salida de materia prima
// @Description  Una entrada con costo total recalcula el costo promedio ponderado. La salida no lo toca.
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la materia prima"
// @Param        body  body  dto.MaterialMovementRequest  true  "Movimiento"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/stock [post]
func (h *MaterialHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MaterialMovementRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	m, err := h.inventory.AdjustMaterialStock(c.Context(), c.Params("id"), in.Type, in.Quantity, in.TotalCost, in.Note)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromMaterial(m))
}

// Movements GET /api/materials/:id/movements?limit=
func (h *MaterialHandler) Movements(c *fiber.Ctx) error {
	list, err := h.inventory.MaterialMovements(c.Context(), c.Params("id"), c.QueryInt("limit", 50))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(dto.Map(list, dto.FromMaterialMovement)))
}
