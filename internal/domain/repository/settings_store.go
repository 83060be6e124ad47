package repository

import "context"

// Claves conocidas del almacén de preferencias.
const (
	KeyTheme       = "theme"
	KeyUserProfile = "userProfile"
	KeyCustomLogo  = "customLogo"
)

// SettingsStore almacén clave/valor de preferencias (equivalente al local storage del painel).
// Get devuelve ok=false cuando la clave no existe.
type SettingsStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
