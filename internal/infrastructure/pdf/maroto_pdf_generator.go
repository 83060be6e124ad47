// Package pdf renderiza los relatórios en PDF A4 con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del relatório   │  Chiparia + fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: pares etiqueta / valor (dos por fila)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: columnas del Document                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de registros                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/chipaflow-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.Renderer = (*ReportRenderer)(nil)

// ReportRenderer implementa reports.Renderer usando Maroto v2.
type ReportRenderer struct{}

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (g *ReportRenderer) Render(_ context.Context, doc *reports.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(nonEmpty(doc.Author, "Chiparia"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(doc.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(doc.Columns))
	m.AddRows(tableRows(doc.Columns, doc.Rows)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(doc.Rows)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + subtítulo (izq) y negocio + fecha (der).
func headerRow(doc *reports.Document) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Subtitle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(nonEmpty(doc.Author, "Chiparia"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRows: dos métricas por fila.
func summaryRows(metrics []reports.Metric) []core.Row {
	rows := make([]core.Row, 0, (len(metrics)+1)/2)
	for i := 0; i < len(metrics); i += 2 {
		first := metricCols(metrics[i])
		cols := []core.Col{first[0], first[1]}
		if i+1 < len(metrics) {
			next := metricCols(metrics[i+1])
			cols = append(cols, next[0], next[1])
		} else {
			cols = append(cols, col.New(6))
		}
		rows = append(rows, row.New(7).Add(cols...))
	}
	return rows
}

func metricCols(m reports.Metric) [2]core.Col {
	return [2]core.Col{
		col.New(3).Add(text.New(m.Label+":", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorGray,
		})),
		col.New(3).Add(text.New(m.Value, props.Text{
			Size: 9, Top: 1, Align: align.Right, Right: 4,
		})),
	}
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow(columns []reports.Column) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.Width).Add(text.New(c.Title, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignFor(c),
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRows: una fila por registro.
func tableRows(columns []reports.Column, data [][]string) []core.Row {
	result := make([]core.Row, 0, len(data))
	for _, r := range data {
		cols := make([]core.Col, 0, len(columns))
		for i, c := range columns {
			value := ""
			if i < len(r) {
				value = r[i]
			}
			cols = append(cols, col.New(c.Width).Add(text.New(value, props.Text{
				Size: 8, Align: alignFor(c), Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d registro(s)", count), props.Text{
			Size: 7, Color: colorGray, Top: 2, Align: align.Right,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func alignFor(c reports.Column) align.Type {
	if c.Numeric {
		return align.Right
	}
	return align.Left
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
