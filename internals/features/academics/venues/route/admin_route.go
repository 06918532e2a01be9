// file: internals/features/academics/venues/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	venueCtl "reviewku_backend/internals/features/academics/venues/controller"
)

func VenueAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := venueCtl.New(db, validator.New())

	grp := admin.Group("/venues")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
