package reports

import (
	"context"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
)

// Renderer serializa un Document en un formato concreto (PDF, planilha).
type Renderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// FinanceReader resumen financeiro usado en el encabezado del relatório.
type FinanceReader interface {
	Summary(ctx context.Context) (*dto.FinanceSummaryDTO, error)
}

// Format formato de descarga.
type Format struct {
	Name        string
	Label       string
	ContentType string
	Extension   string
}

var (
	FormatPDF   = Format{Name: "pdf", Label: "PDF", ContentType: "application/pdf", Extension: ".pdf"}
	FormatExcel = Format{Name: "excel", Label: "Excel", ContentType: "application/vnd.ms-excel", Extension: ".xls"}
)

// Output archivo generado.
type Output struct {
	Filename    string
	ContentType string
	Data        []byte
}
