// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"reviewku_backend/internals/constants"
)

// Claims ditaruh ke locals oleh middleware auth (lihat internals/middlewares/auth).
// Key yang dipakai: "user_id" (string uuid) dan "role" (string).

var ErrNoUserID = errors.New("user_id tidak ditemukan di token")

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrNoUserID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserID
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return strings.ToLower(strings.TrimSpace(role))
}

func IsAdmin(c *fiber.Ctx) bool   { return GetRole(c) == constants.RoleAdmin }
func IsFaculty(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleFaculty }
func IsStudent(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleStudent }

// IsFacultySelf: principal faculty yang sama dengan facultyID (atau admin).
// Dipakai guard endpoint faculty-only: faculty hanya boleh menyentuh
// assignment/review miliknya sendiri.
func IsFacultySelf(c *fiber.Ctx, facultyID uuid.UUID) bool {
	if IsAdmin(c) {
		return true
	}
	if !IsFaculty(c) {
		return false
	}
	id, err := GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return id == facultyID
}
