package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/hedelmia/pos-api/internal/application/analytics"
)

// DashboardHandler resumen diario del negocio.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve ventas del día, saldos de caja, cuentas por cobrar, refrigeradores
// prestados y productos con stock bajo.
// GET /api/dashboard?date=YYYY-MM-DD (por omisión, hoy)
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	date := time.Now()
	d, err := queryDate(c, "date")
	if err != nil {
		return badRequest(c, "INVALID_DATE", "date debe ser YYYY-MM-DD")
	}
	if d != nil {
		date = *d
	}
	summary, err := h.uc.GetSummary(c.Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
