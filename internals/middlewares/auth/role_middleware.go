// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"reviewku_backend/internals/constants"
	helperAuth "reviewku_backend/internals/helpers/auth"
)

// OnlyRoles menolak request bila role di token tidak ada dalam daftar.
func OnlyRoles(message string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[helperAuth.GetRole(c)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}

func AdminOnly(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorAdmin(feature), constants.AdminOnly...)
}

func FacultyAndAbove(feature string) fiber.Handler {
	return OnlyRoles(constants.RoleErrorFaculty(feature), constants.FacultyAndAbove...)
}
