// file: internals/features/reservations/reservations/controller/availability_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"hoopingweek_backend/internals/features/reservations/reservations/dto"
	helper "hoopingweek_backend/internals/helpers"
)

// GetAvailability — GET /api/public/fields/:id/availability?date=YYYY-MM-DD
// Mengembalikan jam efektif + reserved/available slots untuk satu tanggal.
func (ctl *ReservationController) GetAvailability(c *fiber.Ctx) error {
	fieldID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "date query param is required (YYYY-MM-DD)")
	}
	date, perr := time.Parse("2006-01-02", raw)
	if perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date (use YYYY-MM-DD)")
	}

	avail, serr := ctl.Availability.Resolve(c.Context(), fieldID, date)
	if serr != nil {
		return writeServiceError(c, serr)
	}
	return helper.JsonOK(c, "availability fetched", dto.FromAvailability(avail))
}
