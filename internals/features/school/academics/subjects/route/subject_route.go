// file: internals/features/school/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "schoolku_backend/internals/features/school/academics/subjects/controller"
)

/* ===================== ADMIN ===================== */
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSubjectController(db)

	g := r.Group("/subjects")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}

/* ===================== USER (read-only) ===================== */
func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSubjectController(db)

	g := r.Group("/subjects")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
