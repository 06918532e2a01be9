// file: internals/features/reviews/absentees/route/absentee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absenteeCtl "reviewku_backend/internals/features/reviews/absentees/controller"
)

// AbsenteeFacultyRoutes: laporan absensi, read-only (faculty & admin).
func AbsenteeFacultyRoutes(faculty fiber.Router, db *gorm.DB) {
	ctl := absenteeCtl.New(db)
	faculty.Get("/absentees", ctl.Report)
}
