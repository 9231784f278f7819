// file: internals/features/fields/operating_hours/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ohController "hoopingweek_backend/internals/features/fields/operating_hours/controller"
)

// OperatingHoursAdminRoutes: kelola jadwal (manager/admin).
func OperatingHoursAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ohController.NewOperatingHoursController(db)

	api.Post("/operating-hours", ctl.CreateOperatingHour)

	api.Get("/schedule-exceptions", ctl.ListScheduleExceptions)
	api.Post("/schedule-exceptions", ctl.CreateScheduleException)
	api.Delete("/schedule-exceptions/:id", ctl.DeleteScheduleException)

	api.Post("/holidays", ctl.CreateHoliday)
}
