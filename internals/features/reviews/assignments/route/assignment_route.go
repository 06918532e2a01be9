// file: internals/features/reviews/assignments/route/assignment_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignCtl "reviewku_backend/internals/features/reviews/assignments/controller"
	middlewares "reviewku_backend/internals/middlewares"
)

// AssignmentAdminRoutes: assign/transfer/auto-assign + baca assignment
// (admin only, guard di group).
func AssignmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := assignCtl.New(db, validator.New())

	grp := admin.Group("/assignments")
	grp.Post("/", ctl.Assign)
	grp.Get("/", ctl.List)
	grp.Post("/auto-assign", middlewares.BatchRateLimiter(), ctl.AutoAssign)

	admin.Post("/teams/:id/review/transfer", ctl.Transfer)
	admin.Get("/reviews", ctl.ListReviews)
}

// AssignmentFacultyRoutes: faculty menutup review miliknya sendiri.
func AssignmentFacultyRoutes(faculty fiber.Router, db *gorm.DB) {
	ctl := assignCtl.New(db, validator.New())

	faculty.Post("/reviews/:id/complete", ctl.CompleteReview)
	faculty.Get("/reviews", ctl.ListReviews)
	faculty.Get("/assignments", ctl.List)
}
