package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/pos"
)

// PDVHandler cierre de ventas del ponto de venda.
type PDVHandler struct {
	uc *pos.SaleUseCase
}

// NewPDVHandler construye el handler.
func NewPDVHandler(uc *pos.SaleUseCase) *PDVHandler {
	return &PDVHandler{uc: uc}
}

// RegisterSale godoc
// @Summary      Registrar venda
// @Tags         pdv
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Carrito y forma de pagamento"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pdv/sales [post]
func (h *PDVHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
