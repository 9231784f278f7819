// file: internals/features/fields/operating_hours/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ohController "hoopingweek_backend/internals/features/fields/operating_hours/controller"
)

// OperatingHoursPublicRoutes: baca jadwal & hari libur tanpa login.
func OperatingHoursPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ohController.NewOperatingHoursController(db)

	api.Get("/fields/:id/operating-hours", ctl.ListOperatingHours)
	api.Get("/holidays", ctl.ListHolidays)
}
