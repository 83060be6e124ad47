package reports

import "time"

// Column columna de la tabla. Width usa la grilla de 12 columnas; Numeric alinea a la derecha.
type Column struct {
	Title   string
	Width   int
	Numeric bool
}

// Metric par etiqueta/valor del bloque de resumen.
type Metric struct {
	Label string
	Value string
}

// Document reporte tabular independiente del formato de salida.
type Document struct {
	Kind        string
	Title       string
	Subtitle    string
	Author      string
	GeneratedAt time.Time
	Summary     []Metric
	Columns     []Column
	Rows        [][]string
}
