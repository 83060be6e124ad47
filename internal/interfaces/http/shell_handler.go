package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/settings"
)

// navigation menú lateral en orden de exhibición. Sólo Dashboard exige coincidencia exacta.
var navigation = []dto.NavItemDTO{
	{Title: "Dashboard", Href: "/", Icon: "LayoutDashboard", Exact: true},
	{Title: "PDV - Vendas", Href: "/pdv", Icon: "ShoppingCart"},
	{Title: "Estoque", Href: "/estoque", Icon: "Package"},
	{Title: "Financeiro", Href: "/financeiro", Icon: "TrendingUp"},
	{Title: "Compras", Href: "/compras", Icon: "ShoppingBag"},
	{Title: "Relatórios", Href: "/relatorios", Icon: "FileText"},
	{Title: "Configurações", Href: "/configuracoes", Icon: "Settings"},
}

// ShellHandler datos del layout (cabecera + menú) antes del primer render.
type ShellHandler struct {
	settings *SettingsHandler
	svc      *settings.Service
}

// NewShellHandler construye el handler.
func NewShellHandler(svc *settings.Service) *ShellHandler {
	return &ShellHandler{settings: NewSettingsHandler(svc), svc: svc}
}

// Bootstrap godoc
// @Summary      Tema, perfil, logo y navegación en una sola llamada
// @Tags         shell
// @Produce      json
// @Param        os  query  string  false  "Esquema del sistema operativo (dark|light)"
// @Success      200  {object}  dto.BootstrapResponse
// @Router       /api/shell/bootstrap [get]
func (h *ShellHandler) Bootstrap(c *fiber.Ctx) error {
	ctx := c.UserContext()
	th, err := h.settings.themeResponse(c)
	if err != nil {
		return writeError(c, err)
	}
	profile, err := h.svc.Profile(ctx)
	if err != nil {
		return writeError(c, err)
	}
	uri, custom, err := h.svc.Logo(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BootstrapResponse{
		Theme:      th,
		Profile:    toProfileDTO(profile),
		Logo:       dto.LogoResponse{Logo: uri, Custom: custom},
		Navigation: navigation,
	})
}

// Navigation godoc
// @Summary      Menú lateral
// @Tags         shell
// @Produce      json
// @Success      200  {array}  dto.NavItemDTO
// @Router       /api/shell/navigation [get]
func (h *ShellHandler) Navigation(c *fiber.Ctx) error {
	return c.JSON(navigation)
}
