package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/domain/entity"
	"github.com/cobrepro/pedidos-api/pkg/jwt"
)

// Local key para la sesión del actor en Fiber.
const LocalSession = "actor_session"

// AuthMiddleware valida el Bearer Token JWT y materializa la ActorSession en
// c.Locals. Para rol cliente el ID de sesión es el CustomerID del token, de
// modo que las comprobaciones de pertenencia comparan directamente con el ID
// del Customer.
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
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		role := entity.Role(claims.Role)
		if !role.IsValid() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "rol desconocido"})
		}
		id := claims.UserID
		if role == entity.RoleCliente && claims.CustomerID != "" {
			id = claims.CustomerID
		}
		c.Locals(LocalSession, entity.ActorSession{
			ID:       id,
			Name:     claims.Name,
			Role:     role,
			TenantID: claims.TenantID,
		})
		return c.Next()
	}
}

// GetSession devuelve la ActorSession del contexto (después del middleware de
// auth). El segundo valor es false si el middleware no corrió.
func GetSession(c *fiber.Ctx) (entity.ActorSession, bool) {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.ActorSession{}, false
	}
	s, ok := v.(entity.ActorSession)
	return s, ok
}

// RequireRole corta con 403 si el rol de la sesión no está en la lista.
// La autorización fina (tabla por acción y tenant) vive en los repositorios;
// este middleware solo recorta superficies enteras, como el registro de
// usuarios.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := GetSession(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión no resuelta"})
		}
		for _, r := range roles {
			if s.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "rol sin permiso para esta operación"})
	}
}
