// file: internals/features/reservations/reservations/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resvController "hoopingweek_backend/internals/features/reservations/reservations/controller"
)

// ReservationPublicRoutes: baca availability tanpa login.
func ReservationPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := resvController.NewReservationController(db)

	api.Get("/fields/:id/availability", ctl.GetAvailability)
}
