package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/pkg/jwt"
)

// Locals keys para operador y papel en Fiber.
const (
	LocalOperator = "operator"
	LocalRole     = "role"
)

// RoleAdmin papel requerido en las rutas de escritura.
const RoleAdmin = "admin"

// AuthMiddleware valida el Bearer Token JWT y deja operador y papel en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		operator, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalOperator, operator)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole debe ir después de AuthMiddleware. Sin papel en el token: 401; papel no permitido: 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_ROLE", "token sin papel")
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", "papel sem permissão: "+role)
	}
}

// writeGuard middlewares de las rutas de escritura. Sin secret no protege nada.
func writeGuard(jwtSecret string) []fiber.Handler {
	if jwtSecret == "" {
		return nil
	}
	return []fiber.Handler{AuthMiddleware(jwtSecret), RequireRole(RoleAdmin)}
}

// guarded antepone los middlewares al handler sin compartir el slice base.
func guarded(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, h)
}

// GetOperator devuelve el operador del token (después de AuthMiddleware).
func GetOperator(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalOperator).(string)
	return s
}

// GetRole devuelve el papel del token (después de AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
