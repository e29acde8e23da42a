// file: internals/features/school/classes/class_sections/route/class_section_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "schoolku_backend/internals/features/school/classes/class_sections/controller"
)

/* ===================== ADMIN ===================== */
func ClassSectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewClassSectionController(db)

	g := r.Group("/class-sections")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}

/* ===================== USER (read-only) ===================== */
func ClassSectionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewClassSectionController(db)

	g := r.Group("/class-sections")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
