package dto

// ThemeResponse preferencia guardada, tema aplicado y clase final de la raíz.
type ThemeResponse struct {
	Theme     string `json:"theme"`
	Applied   string `json:"applied"`
	RootClass string `json:"root_class"`
}

// UpdateThemeRequest PUT /api/settings/theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

// ProfileDTO perfil del usuario (entrada y salida).
type ProfileDTO struct {
	Nome     string `json:"nome"`
	Cargo    string `json:"cargo"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

// LogoResponse logo vigente: data URI personalizado o ruta del asset por defecto.
type LogoResponse struct {
	Logo   string `json:"logo"`
	Custom bool   `json:"custom"`
}

// NavItemDTO entrada del menú lateral.
type NavItemDTO struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
	Exact bool   `json:"exact,omitempty"`
}

// BootstrapResponse todo lo que el shell necesita antes del primer render.
type BootstrapResponse struct {
	Theme      ThemeResponse `json:"theme"`
	Profile    ProfileDTO    `json:"profile"`
	Logo       LogoResponse  `json:"logo"`
	Navigation []NavItemDTO  `json:"navigation"`
}
