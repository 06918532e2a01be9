// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middlewareAuth "reviewku_backend/internals/middlewares/auth"

	scopeRoute "reviewku_backend/internals/features/academics/scopes/route"
	venueRoute "reviewku_backend/internals/features/academics/venues/route"
	absenteeRoute "reviewku_backend/internals/features/reviews/absentees/route"
	assignRoute "reviewku_backend/internals/features/reviews/assignments/route"
	sessionRoute "reviewku_backend/internals/features/sessions/lab_sessions/route"
	teamRoute "reviewku_backend/internals/features/teams/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// ADMIN → JWT + role admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		middlewareAuth.AuthMiddleware(),
		middlewareAuth.AdminOnly("manajemen review"),
	)

	// FACULTY → JWT + role faculty/admin
	log.Println("[INFO] Setting up FACULTY group (Auth + RoleCheck)...")
	faculty := app.Group("/api/f",
		middlewareAuth.AuthMiddleware(),
		middlewareAuth.FacultyAndAbove("review & jadwal"),
	)

	// USER → JWT saja (semua principal ber-token)
	log.Println("[INFO] Setting up USER group (Auth)...")
	user := app.Group("/api/u",
		middlewareAuth.AuthMiddleware(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Scope routes...")
	scopeRoute.ScopeAdminRoutes(admin, db)
	scopeRoute.ScopeUserRoutes(user, db)

	log.Println("[INFO] Mounting Venue routes...")
	venueRoute.VenueAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Team routes...")
	teamRoute.TeamAdminRoutes(admin, db)
	teamRoute.TeamFacultyRoutes(faculty, db)

	log.Println("[INFO] Mounting Assignment routes...")
	assignRoute.AssignmentAdminRoutes(admin, db)
	assignRoute.AssignmentFacultyRoutes(faculty, db)

	log.Println("[INFO] Mounting Lab session routes...")
	sessionRoute.LabSessionAdminRoutes(admin, db)
	sessionRoute.LabSessionFacultyRoutes(faculty, db)

	log.Println("[INFO] Mounting Absentee routes...")
	absenteeRoute.AbsenteeFacultyRoutes(faculty, db)
}
