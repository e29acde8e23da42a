// file: internals/helpers/auth/locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID    = "user_id"   // string UUID
	LocSchoolID  = "school_id" // string UUID (active tenant)
	LocTeacherID = "teacher_id"

	LocRolesGlobal = "roles_global" // []string
	LocSchoolRoles = "school_roles" // []string (roles dalam school aktif)
	LocIsOwner     = "is_owner"     // bool
)

/* ============================================
   Getters
   ============================================ */

// GetSchoolIDFromLocals mengambil tenant aktif yang sudah dihydrate AuthJWT.
// Semua operasi penjadwalan WAJIB discope dengan ID ini.
func GetSchoolIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocSchoolID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School context tidak ditemukan di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id pada token tidak valid")
	}
	return id, nil
}

// GetUserIDFromLocals mengambil user id hasil verifikasi JWT.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id pada token tidak valid")
	}
	return id, nil
}

// GetRolesFromLocals membaca slice role apapun bentuk aslinya di Locals.
func GetRolesFromLocals(c *fiber.Ctx, key string) []string {
	v := c.Locals(key)
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	}
	return nil
}

// HasAnyRole cek apakah salah satu role ada di Locals (global atau school).
func HasAnyRole(c *fiber.Ctx, wanted []string) bool {
	have := append(GetRolesFromLocals(c, LocRolesGlobal), GetRolesFromLocals(c, LocSchoolRoles)...)
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
