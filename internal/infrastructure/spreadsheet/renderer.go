// Package spreadsheet exporta relatórios como planilha XML (SpreadsheetML 2003),
// que Excel y LibreOffice abren sin conversión.
package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/chipaflow-api/internal/application/reports"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	maxSheetName  = 31
)

var _ reports.Renderer = (*Renderer)(nil)

// Renderer implementa reports.Renderer con beevik/etree.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render devuelve el XML del libro con una única hoja.
func (r *Renderer) Render(_ context.Context, doc *reports.Document) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	x.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	wb := x.CreateElement("Workbook")
	wb.CreateAttr("xmlns", nsSpreadsheet)
	wb.CreateAttr("xmlns:o", "urn:schemas-microsoft-com:office:office")
	wb.CreateAttr("xmlns:x", "urn:schemas-microsoft-com:office:excel")
	wb.CreateAttr("xmlns:ss", nsSpreadsheet)

	props := wb.CreateElement("DocumentProperties")
	props.CreateAttr("xmlns", "urn:schemas-microsoft-com:office:office")
	props.CreateElement("Title").SetText(doc.Title)
	if doc.Author != "" {
		props.CreateElement("Author").SetText(doc.Author)
	}
	props.CreateElement("Created").SetText(doc.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"))

	styles := wb.CreateElement("Styles")
	addStyle(styles, "title", func(s *etree.Element) {
		f := s.CreateElement("Font")
		f.CreateAttr("ss:Bold", "1")
		f.CreateAttr("ss:Size", "14")
	})
	addStyle(styles, "header", func(s *etree.Element) {
		s.CreateElement("Font").CreateAttr("ss:Bold", "1")
		in := s.CreateElement("Interior")
		in.CreateAttr("ss:Color", "#FED7AA")
		in.CreateAttr("ss:Pattern", "Solid")
	})
	addStyle(styles, "label", func(s *etree.Element) {
		s.CreateElement("Font").CreateAttr("ss:Bold", "1")
	})

	ws := wb.CreateElement("Worksheet")
	ws.CreateAttr("ss:Name", sheetName(doc.Title))
	table := ws.CreateElement("Table")

	addRow(table, cell{value: doc.Title, style: "title"})
	if doc.Subtitle != "" {
		addRow(table, cell{value: doc.Subtitle})
	}
	table.CreateElement("Row")

	for _, m := range doc.Summary {
		addRow(table, cell{value: m.Label, style: "label"}, cell{value: m.Value})
	}
	if len(doc.Summary) > 0 {
		table.CreateElement("Row")
	}

	header := make([]cell, 0, len(doc.Columns))
	for _, c := range doc.Columns {
		header = append(header, cell{value: c.Title, style: "header"})
	}
	addRow(table, header...)

	for _, data := range doc.Rows {
		cells := make([]cell, 0, len(doc.Columns))
		for i, c := range doc.Columns {
			v := ""
			if i < len(data) {
				v = data[i]
			}
			cells = append(cells, cell{value: v, numeric: c.Numeric})
		}
		addRow(table, cells...)
	}

	x.Indent(2)
	out, err := x.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar: %w", err)
	}
	return out, nil
}

type cell struct {
	value   string
	style   string
	numeric bool
}

func addStyle(styles *etree.Element, id string, fill func(*etree.Element)) {
	s := styles.CreateElement("Style")
	s.CreateAttr("ss:ID", id)
	fill(s)
}

func addRow(table *etree.Element, cells ...cell) {
	row := table.CreateElement("Row")
	for _, c := range cells {
		el := row.CreateElement("Cell")
		if c.style != "" {
			el.CreateAttr("ss:StyleID", c.style)
		}
		data := el.CreateElement("Data")
		if c.numeric {
			if _, err := strconv.ParseFloat(c.value, 64); err == nil {
				data.CreateAttr("ss:Type", "Number")
				data.SetText(c.value)
				continue
			}
		}
		data.CreateAttr("ss:Type", "String")
		data.SetText(c.value)
	}
}

// sheetName nombre de hoja válido: sin []:*?/\ y como máximo 31 caracteres.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		return "Relatório"
	}
	runes := []rune(name)
	if len(runes) > maxSheetName {
		name = strings.TrimSpace(string(runes[:maxSheetName]))
	}
	return name
}
