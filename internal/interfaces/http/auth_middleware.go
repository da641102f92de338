package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lycoris/control-stock/internal/application/dto"
	"github.com/lycoris/control-stock/internal/domain/entity"
	"github.com/lycoris/control-stock/pkg/jwt"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUserID     = "user_id"
	LocalUserNombre = "user_nombre"
	LocalUserRol    = "user_rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los datos del usuario a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, nombre, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserNombre, nombre)
		c.Locals(LocalUserRol, rol)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetActor devuelve el nombre del usuario autenticado para el rastro de
// auditoría; sin sesión devuelve el actor centinela del sistema.
func GetActor(c *fiber.Ctx) string {
	v := c.Locals(LocalUserNombre)
	if v == nil {
		return entity.UsuarioSistema
	}
	s, _ := v.(string)
	if s == "" {
		return entity.UsuarioSistema
	}
	return s
}
