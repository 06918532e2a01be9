// file: internals/features/teams/route/team_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teamCtl "reviewku_backend/internals/features/teams/controller"
	middlewares "reviewku_backend/internals/middlewares"
)

// TeamAdminRoutes: CRUD team + status + bulk (admin only, guard di group).
func TeamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := teamCtl.New(db, validator.New())

	grp := admin.Group("/teams")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)

	grp.Patch("/:id/status", ctl.UpdateStatus)
	grp.Post("/:id/guide", ctl.SelectGuide)
	grp.Post("/:id/expert", ctl.SelectExpert)

	grp.Post("/bulk/status", middlewares.BatchRateLimiter(), ctl.BulkStatusUpdate)
}

// TeamFacultyRoutes: keputusan role + submit (faculty & admin).
func TeamFacultyRoutes(faculty fiber.Router, db *gorm.DB) {
	ctl := teamCtl.New(db, validator.New())

	grp := faculty.Group("/teams")
	grp.Post("/:id/roles/:role/:action", ctl.DecideRole)
	grp.Post("/:id/submit", ctl.SubmitForReview)
}
