// file: internals/route/details/reservation_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	OperatingHoursRoutes "hoopingweek_backend/internals/features/fields/operating_hours/route"
	ReservationRoutes "hoopingweek_backend/internals/features/reservations/reservations/route"
)

// ✅ Route publik tanpa token
// Contoh akses: /api/public/fields/:id/availability
func ReservationPublicRoutes(api fiber.Router, db *gorm.DB) {
	ReservationRoutes.ReservationPublicRoutes(api, db)
	OperatingHoursRoutes.OperatingHoursPublicRoutes(api, db)
}

// ✅ Route user login (dengan token)
// Contoh akses: /api/u/reservations
func ReservationUserRoutes(api fiber.Router, db *gorm.DB) {
	ReservationRoutes.ReservationUserRoutes(api, db)
}

// ✅ Route manager/admin (token + role)
// Contoh akses: /api/a/reservations/:id/approve
func ReservationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ReservationRoutes.ReservationAdminRoutes(api, db)
	OperatingHoursRoutes.OperatingHoursAdminRoutes(api, db)
}
