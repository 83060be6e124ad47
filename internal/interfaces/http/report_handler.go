package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/reports"
)

// ReportHandler catálogo y descarga de relatórios.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Catalog godoc
// @Summary      Relatórios disponíveis
// @Tags         reports
// @Produce      json
// @Success      200  {array}  dto.ReportDTO
// @Router       /api/reports [get]
func (h *ReportHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalog())
}

// Download godoc
// @Summary      Descargar relatório
// @Tags         reports
// @Produce      application/pdf
// @Produce      application/vnd.ms-excel
// @Param        kind    path   string  true   "financeiro | vendas | estoque | compras"
// @Param        format  query  string  false  "pdf | excel"  default(pdf)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{kind} [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.UserContext(), c.Params("kind"), c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	return c.Send(out.Data)
}
