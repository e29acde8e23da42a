// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	subjectRoute "schoolku_backend/internals/features/school/academics/subjects/route"
	csstRoute "schoolku_backend/internals/features/school/classes/class_section_subject_teachers/route"
	sectionRoute "schoolku_backend/internals/features/school/classes/class_sections/route"
	teacherRoute "schoolku_backend/internals/features/school/teachers/route"
	timetableRoute "schoolku_backend/internals/features/school/timetable/route"
	authMw "schoolku_backend/internals/middlewares/auth_school"
	featureMw "schoolku_backend/internals/middlewares/features"
)

/* ===================== /api/a — admin sekolah ===================== */
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/a",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		featureMw.IsSchoolAdmin(),
	)

	subjectRoute.SubjectAdminRoutes(admin, db)
	sectionRoute.ClassSectionAdminRoutes(admin, db)
	teacherRoute.SchoolTeacherAdminRoutes(admin, db)
	csstRoute.CSSTAdminRoutes(admin, db)
	timetableRoute.TimetableAdminRoutes(admin, db)
}

/* ===================== /api/u — user login (read-only) ===================== */
func SchoolUserRoutes(api fiber.Router, db *gorm.DB) {
	user := api.Group("/u",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	subjectRoute.SubjectUserRoutes(user, db)
	sectionRoute.ClassSectionUserRoutes(user, db)
	teacherRoute.SchoolTeacherUserRoutes(user, db)
	csstRoute.CSSTUserRoutes(user, db)
	timetableRoute.TimetableUserRoutes(user, db)
}
