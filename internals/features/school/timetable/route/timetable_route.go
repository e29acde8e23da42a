// file: internals/features/school/timetable/route/timetable_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "schoolku_backend/internals/features/school/timetable/controller"
	"schoolku_backend/internals/middlewares"
)

/* ===================== ADMIN ===================== */
func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewTimetableController(db)

	slots := r.Group("/timetable-slots")
	slots.Post("/", ctl.CreateSlot)
	slots.Post("/validate", ctl.ValidateSlot)
	slots.Delete("/:id", ctl.DeleteSlot)

	sections := r.Group("/class-sections")
	sections.Put("/:id/timetable", ctl.BulkReplaceSection)
	sections.Post("/:id/timetable/generate", middlewares.GenerateTimetableRateLimiter(), ctl.GenerateSection)
	sections.Get("/:id/timetable", ctl.SectionTimetable)

	teachers := r.Group("/teachers")
	teachers.Get("/:id/timetable", ctl.TeacherTimetable)
	teachers.Get("/:id/workload", ctl.TeacherWorkload)

	r.Get("/timetable", ctl.SchoolTimetable)

	settings := r.Group("/timetable-settings")
	settings.Get("/", ctl.GetSetting)
	settings.Put("/", ctl.PutSetting)
}

/* ===================== USER (read-only) ===================== */
func TimetableUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewTimetableController(db)

	r.Get("/class-sections/:id/timetable", ctl.SectionTimetable)
	r.Get("/teachers/:id/timetable", ctl.TeacherTimetable)
	r.Get("/timetable", ctl.SchoolTimetable)
}
