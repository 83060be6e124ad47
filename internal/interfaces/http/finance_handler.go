package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/usecase"
)

// FinanceHandler transações y resumen financiero.
type FinanceHandler struct {
	uc *usecase.TransactionUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.TransactionUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// ListTransactions godoc
// @Summary      Listar transações (más recientes primero)
// @Tags         finance
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateTransaction godoc
// @Summary      Nova transação
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Transação"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Summary godoc
// @Summary      Resumen de la página Financeiro
// @Tags         finance
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryDTO
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
