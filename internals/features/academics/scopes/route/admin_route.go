// file: internals/features/academics/scopes/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scopeCtl "reviewku_backend/internals/features/academics/scopes/controller"
)

// ScopeAdminRoutes: CRUD scope + kontrol timer (admin only, guard di group).
func ScopeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := scopeCtl.New(db, validator.New())

	grp := admin.Group("/scopes")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)

	grp.Post("/:id/timer/start", ctl.StartTimer)
	grp.Post("/:id/timer/pause", ctl.PauseTimer)
	grp.Post("/:id/timer/reset", ctl.ResetTimer)
}

// ScopeUserRoutes: status timer boleh dibaca semua principal ber-token.
func ScopeUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := scopeCtl.New(db, nil)
	user.Get("/scopes/:id/timer", ctl.GetTimer)
}
