package auth

import (
	"github.com/gofiber/fiber/v2"

	"hoopingweek_backend/internals/constants"
)

// RequireRoles menolak request kalau role di token tidak termasuk daftar.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorManager(c.Path()))
		}
		return c.Next()
	}
}

func IsManagerOrAdmin(c *fiber.Ctx) bool {
	role := GetRole(c)
	return role == constants.RoleManager || role == constants.RoleAdmin
}
