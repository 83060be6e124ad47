package dto

// ReportDTO entrada del catálogo de relatórios.
type ReportDTO struct {
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Formats     []string `json:"formats"`
}
