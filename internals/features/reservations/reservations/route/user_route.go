// file: internals/features/reservations/reservations/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resvController "hoopingweek_backend/internals/features/reservations/reservations/controller"
	"hoopingweek_backend/internals/middlewares"
)

// ReservationUserRoutes: rute ber-JWT untuk athlete/manager/admin.
func ReservationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := resvController.NewReservationController(db)

	r := api.Group("/reservations")

	// Create dipasangi limiter lebih ketat (guard double-submit)
	r.Post("/", middlewares.BookingRateLimiter(), ctl.Create)
	r.Post("/check-overlap", ctl.CheckOverlap)

	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Put("/:id", ctl.Update)
	r.Post("/:id/cancel", ctl.Cancel)

	r.Get("/:id/participants", ctl.ListParticipants)
	r.Post("/:id/participants", ctl.AddParticipant)
	r.Delete("/:id/participants/:user_id", ctl.RemoveParticipant)
}
