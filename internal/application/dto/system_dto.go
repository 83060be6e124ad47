package dto

// CloudCheckResponse resultado del auto-test de conexión con el almacén externo.
type CloudCheckResponse struct {
	Configured       bool   `json:"configured"`
	Connected        bool   `json:"connected"`
	URL              string `json:"url,omitempty"`
	APIKeyConfigured bool   `json:"api_key_configured"`
	Message          string `json:"message"`
}
