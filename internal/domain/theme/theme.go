// Package theme resuelve la preferencia de tema guardada (dark/light/system)
// al tema concreto que se aplica en la clase raíz del documento.
package theme

import (
	"errors"
	"strings"
)

// Preference valor guardado bajo la clave "theme".
type Preference string

// Applied tema concreto en la raíz del documento.
type Applied string

const (
	Dark   Preference = "dark"
	Light  Preference = "light"
	System Preference = "system"

	AppliedDark  Applied = "dark"
	AppliedLight Applied = "light"

	// DefaultPreference se usa (y se persiste) cuando no hay preferencia guardada.
	DefaultPreference = Dark
)

// ErrInvalidPreference valor fuera de dark|light|system.
var ErrInvalidPreference = errors.New("tema inválido: use dark, light ou system")

// ParsePreference valida un valor recibido o leído del almacenamiento.
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case Dark, Light, System:
		return p, nil
	default:
		return "", ErrInvalidPreference
	}
}

// Resolve devuelve el tema aplicado. El sistema operativo sólo se consulta con System.
func Resolve(pref Preference, osPrefersDark bool) Applied {
	switch pref {
	case Dark:
		return AppliedDark
	case Light:
		return AppliedLight
	default:
		if osPrefersDark {
			return AppliedDark
		}
		return AppliedLight
	}
}

// Toggle alterna entre dark y light; desde System siempre va a Dark.
func Toggle(pref Preference) Preference {
	if pref == Dark {
		return Light
	}
	return Dark
}

// ParseOSScheme interpreta el hint del cliente (Sec-CH-Prefers-Color-Scheme o ?os=).
// Cualquier valor distinto de "dark" se trata como claro.
func ParseOSScheme(s string) bool {
	return strings.EqualFold(strings.Trim(strings.TrimSpace(s), `"`), "dark")
}

// ClassList conjunto ordenado de clases CSS de la raíz del documento.
type ClassList struct {
	classes []string
}

// NewClassList construye la lista a partir de un atributo class ("a b c").
func NewClassList(attr string) *ClassList {
	cl := &ClassList{}
	for _, c := range strings.Fields(attr) {
		cl.Add(c)
	}
	return cl
}

// Add agrega la clase si no está.
func (cl *ClassList) Add(class string) {
	if !cl.Contains(class) {
		cl.classes = append(cl.classes, class)
	}
}

// Remove quita las clases indicadas.
func (cl *ClassList) Remove(classes ...string) {
	kept := cl.classes[:0]
	for _, c := range cl.classes {
		drop := false
		for _, r := range classes {
			if c == r {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	cl.classes = kept
}

// Contains reporta si la clase está presente.
func (cl *ClassList) Contains(class string) bool {
	for _, c := range cl.classes {
		if c == class {
			return true
		}
	}
	return false
}

// String devuelve el atributo class.
func (cl *ClassList) String() string {
	return strings.Join(cl.classes, " ")
}

// Apply quita cualquier tema previo de la raíz y agrega el resuelto. Idempotente.
func Apply(root *ClassList, applied Applied) {
	root.Remove(string(AppliedLight), string(AppliedDark))
	root.Add(string(applied))
}
