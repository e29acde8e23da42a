// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/route/details"
)

// SetupRoutes mendaftarkan semua grup route aplikasi.
//   - /api/a : admin sekolah (JWT + role admin/owner)
//   - /api/u : user login (JWT, read-only)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.SchoolAdminRoutes(api, db)
	details.SchoolUserRoutes(api, db)
}
