package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/settings"
	"github.com/jhoicas/chipaflow-api/internal/domain/entity"
	"github.com/jhoicas/chipaflow-api/internal/domain/theme"
)

// headerPrefersColorScheme client hint del navegador con el esquema del sistema operativo.
const (
	headerPrefersColorScheme = "Sec-CH-Prefers-Color-Scheme"
	headerAcceptCH           = "Accept-CH"
)

// SettingsHandler tema, perfil y logo.
type SettingsHandler struct {
	svc *settings.Service
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(svc *settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetTheme godoc
// @Summary      Preferencia de tema y tema aplicado
// @Tags         settings
// @Produce      json
// @Param        os    query  string  false  "Esquema del sistema operativo (dark|light)"
// @Param        root  query  string  false  "Clases actuales de la raíz del documento"
// @Success      200   {object}  dto.ThemeResponse
// @Router       /api/settings/theme [get]
func (h *SettingsHandler) GetTheme(c *fiber.Ctx) error {
	out, err := h.themeResponse(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateTheme godoc
// @Summary      Guardar preferencia de tema
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateThemeRequest  true  "dark | light | system"
// @Success      200   {object}  dto.ThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/theme [put]
func (h *SettingsHandler) UpdateTheme(c *fiber.Ctx) error {
	var in dto.UpdateThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.svc.SetTheme(c.UserContext(), theme.Preference(in.Theme)); err != nil {
		return writeError(c, err)
	}
	out, err := h.themeResponse(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ToggleTheme godoc
// @Summary      Alternar dark/light
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.ThemeResponse
// @Router       /api/settings/theme/toggle [post]
func (h *SettingsHandler) ToggleTheme(c *fiber.Ctx) error {
	if _, err := h.svc.ToggleTheme(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	out, err := h.themeResponse(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *SettingsHandler) themeResponse(c *fiber.Ctx) (dto.ThemeResponse, error) {
	root := theme.NewClassList(c.Query("root"))
	pref, applied, err := h.svc.ApplyTo(c.UserContext(), root, osPrefersDark(c))
	if err != nil {
		return dto.ThemeResponse{}, err
	}
	return dto.ThemeResponse{Theme: string(pref), Applied: string(applied), RootClass: root.String()}, nil
}

// osPrefersDark ?os= tiene prioridad sobre el client hint. Pide el hint al navegador
// (Accept-CH) porque sólo lo envía después de que el servidor lo solicita.
func osPrefersDark(c *fiber.Ctx) bool {
	c.Set(headerAcceptCH, headerPrefersColorScheme)
	c.Vary(headerPrefersColorScheme)
	if v := c.Query("os"); v != "" {
		return theme.ParseOSScheme(v)
	}
	return theme.ParseOSScheme(c.Get(headerPrefersColorScheme))
}

// GetProfile godoc
// @Summary      Perfil del usuario
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.ProfileDTO
// @Router       /api/settings/profile [get]
func (h *SettingsHandler) GetProfile(c *fiber.Ctx) error {
	p, err := h.svc.Profile(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProfileDTO(p))
}

// UpdateProfile godoc
// @Summary      Guardar perfil
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfileDTO  true  "Perfil"
// @Success      200   {object}  dto.ProfileDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.ProfileDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.svc.SetProfile(c.UserContext(), entity.Profile{
		Nome: in.Nome, Cargo: in.Cargo, Email: in.Email, Telefone: in.Telefone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toProfileDTO(p))
}

// GetLogo godoc
// @Summary      Logo vigente
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.LogoResponse
// @Router       /api/settings/logo [get]
func (h *SettingsHandler) GetLogo(c *fiber.Ctx) error {
	uri, custom, err := h.svc.Logo(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LogoResponse{Logo: uri, Custom: custom})
}

// UploadLogo godoc
// @Summary      Subir logo personalizado
// @Tags         settings
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Imagen"
// @Success      200   {object}  dto.LogoResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/settings/logo [post]
func (h *SettingsHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "VALIDATION", msgInvalidImage)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, err)
	}
	uri, err := h.svc.SetLogo(c.UserContext(), fh.Filename, data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LogoResponse{Logo: uri, Custom: true})
}

// ResetLogo godoc
// @Summary      Volver al logo por defecto
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.LogoResponse
// @Router       /api/settings/logo [delete]
func (h *SettingsHandler) ResetLogo(c *fiber.Ctx) error {
	if err := h.svc.ResetLogo(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return h.GetLogo(c)
}

func toProfileDTO(p entity.Profile) dto.ProfileDTO {
	return dto.ProfileDTO{Nome: p.Nome, Cargo: p.Cargo, Email: p.Email, Telefone: p.Telefone}
}
