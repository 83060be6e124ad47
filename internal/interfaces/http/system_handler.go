package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/system"
)

// SystemHandler auto-tests de dependencias.
type SystemHandler struct {
	cloud *system.CloudCheck
}

// NewSystemHandler construye el handler.
func NewSystemHandler(cloud *system.CloudCheck) *SystemHandler {
	return &SystemHandler{cloud: cloud}
}

// CloudCheck godoc
// @Summary      Probar conexión con Supabase
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.CloudCheckResponse
// @Router       /api/system/cloud-check [get]
func (h *SystemHandler) CloudCheck(c *fiber.Ctx) error {
	return c.JSON(h.cloud.Run(c.UserContext()))
}
