// file: internals/features/reservations/reservations/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resvController "hoopingweek_backend/internals/features/reservations/reservations/controller"
)

// ReservationAdminRoutes: keputusan lifecycle + hapus (manager/admin).
func ReservationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := resvController.NewReservationController(db)

	r := api.Group("/reservations")

	r.Patch("/:id/status", ctl.ChangeStatus)
	r.Post("/:id/approve", ctl.Approve)
	r.Post("/:id/reject", ctl.Reject)
	r.Post("/:id/complete", ctl.Complete)

	r.Delete("/:id", ctl.Delete)
}
