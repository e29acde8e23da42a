// file: internals/features/school/classes/class_section_subject_teachers/route/class_section_subject_teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "schoolku_backend/internals/features/school/classes/class_section_subject_teachers/controller"
)

/* ===================== ADMIN ===================== */
func CSSTAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewCSSTController(db)

	g := r.Group("/class-section-subject-teachers")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}

/* ===================== USER (read-only) ===================== */
func CSSTUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewCSSTController(db)

	g := r.Group("/class-section-subject-teachers")
	g.Get("/", ctl.List)
}
