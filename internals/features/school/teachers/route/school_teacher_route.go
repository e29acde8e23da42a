// file: internals/features/school/teachers/route/school_teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "schoolku_backend/internals/features/school/teachers/controller"
)

/* ===================== ADMIN ===================== */
func SchoolTeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSchoolTeacherController(db)

	g := r.Group("/teachers")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}

/* ===================== USER (read-only) ===================== */
func SchoolTeacherUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSchoolTeacherController(db)

	g := r.Group("/teachers")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
