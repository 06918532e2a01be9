// file: internals/features/sessions/lab_sessions/route/lab_session_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionCtl "reviewku_backend/internals/features/sessions/lab_sessions/controller"
)

// LabSessionAdminRoutes: booking + mutasi jadwal (admin only, guard di group).
func LabSessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := sessionCtl.New(db, validator.New())

	grp := admin.Group("/sessions")
	grp.Post("/", ctl.Book)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)

	grp.Post("/copy-day", ctl.CopyDay)
	grp.Post("/swap-venues", ctl.SwapVenues)
}

// LabSessionFacultyRoutes: faculty membaca jadwalnya sendiri.
func LabSessionFacultyRoutes(faculty fiber.Router, db *gorm.DB) {
	ctl := sessionCtl.New(db, nil)
	faculty.Get("/sessions", ctl.List)
	faculty.Get("/sessions/:id", ctl.GetByID)
}
