package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/chipaflow-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints de la página inicial.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve estoque, compras y financeiro del painel.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, stock_value, low_stock_*,
// *_orders, purchases_value, active_suppliers, revenue, expenses, net_profit,
// profit_margin, cash_balance, date_label).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
