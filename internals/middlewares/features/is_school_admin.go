package middleware

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helper "schoolku_backend/internals/helpers/auth"
)

/* ==========================
   Guard: admin/owner sekolah
========================== */

// IsSchoolAdmin memastikan request datang dari admin (atau owner) sekolah
// yang aktif di token. Tenant sudah dihydrate AuthJWT ke Locals.
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helper.GetSchoolIDFromLocals(c); err != nil {
			return err
		}
		if v, ok := c.Locals(helper.LocIsOwner).(bool); ok && v {
			return c.Next()
		}
		if !helper.HasAnyRole(c, constants.AdminAndAbove) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("timetable"))
		}
		return c.Next()
	}
}

// IsSchoolTeacherOrAdmin untuk endpoint baca yang boleh diakses guru.
func IsSchoolTeacherOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helper.GetSchoolIDFromLocals(c); err != nil {
			return err
		}
		if v, ok := c.Locals(helper.LocIsOwner).(bool); ok && v {
			return c.Next()
		}
		if !helper.HasAnyRole(c, constants.TeacherAndAbove) {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher("timetable"))
		}
		return c.Next()
	}
}
