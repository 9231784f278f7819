// file: internals/features/fields/operating_hours/controller/operating_hours_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fieldModel "hoopingweek_backend/internals/features/fields/fields/model"
	"hoopingweek_backend/internals/features/fields/operating_hours/dto"
	ohModel "hoopingweek_backend/internals/features/fields/operating_hours/model"
	helper "hoopingweek_backend/internals/helpers"
)

type OperatingHoursController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOperatingHoursController(db *gorm.DB) *OperatingHoursController {
	return &OperatingHoursController{DB: db, Validate: validator.New()}
}

func (ctl *OperatingHoursController) ensureField(c *fiber.Ctx, fieldID uuid.UUID) error {
	var field fieldModel.FieldModel
	if err := ctl.DB.WithContext(c.Context()).First(&field, "field_id = ?", fieldID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "field not found")
		}
		return helper.WritePGError(c, err)
	}
	return nil
}

/* =========================================================
   1) Weekly rules
   ========================================================= */

// CreateOperatingHour — POST /api/a/operating-hours
// Duplikat (field, day_of_week) kena unique index → 409.
func (ctl *OperatingHoursController) CreateOperatingHour(c *fiber.Ctx) error {
	var req dto.CreateOperatingHourRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if denied := ctl.ensureField(c, row.FieldOperatingHourFieldID); denied != nil {
		return denied
	}

	if err := ctl.DB.WithContext(c.Context()).Create(row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "operating hour created", dto.FromOperatingHour(row))
}

// ListOperatingHours — GET /api/public/fields/:id/operating-hours
func (ctl *OperatingHoursController) ListOperatingHours(c *fiber.Ctx) error {
	fieldID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if denied := ctl.ensureField(c, fieldID); denied != nil {
		return denied
	}

	var rows []ohModel.FieldOperatingHourModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("field_operating_hour_field_id = ?", fieldID).
		Order("field_operating_hour_day_of_week ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "operating hours fetched", dto.FromOperatingHours(rows))
}

/* =========================================================
   2) Schedule exceptions
   ========================================================= */

// CreateScheduleException — POST /api/a/schedule-exceptions
func (ctl *OperatingHoursController) CreateScheduleException(c *fiber.Ctx) error {
	var req dto.CreateScheduleExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if denied := ctl.ensureField(c, row.FieldScheduleExceptionFieldID); denied != nil {
		return denied
	}

	if err := ctl.DB.WithContext(c.Context()).Create(row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "schedule exception created", dto.FromScheduleException(row))
}

// ListScheduleExceptions — GET /api/a/schedule-exceptions?field_id=
func (ctl *OperatingHoursController) ListScheduleExceptions(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&ohModel.FieldScheduleExceptionModel{})
	if raw := strings.TrimSpace(c.Query("field_id")); raw != "" {
		fieldID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid field_id")
		}
		q = q.Where("field_schedule_exception_field_id = ?", fieldID)
	}

	var rows []ohModel.FieldScheduleExceptionModel
	if err := q.Order("field_schedule_exception_date ASC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "schedule exceptions fetched", dto.FromScheduleExceptions(rows))
}

// DeleteScheduleException — DELETE /api/a/schedule-exceptions/:id
func (ctl *OperatingHoursController) DeleteScheduleException(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&ohModel.FieldScheduleExceptionModel{}, "field_schedule_exception_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "schedule exception not found")
	}
	return helper.JsonDeleted(c, "schedule exception deleted", fiber.Map{"field_schedule_exception_id": id})
}

/* =========================================================
   3) Holidays
   ========================================================= */

// CreateHoliday — POST /api/a/holidays
func (ctl *OperatingHoursController) CreateHoliday(c *fiber.Ctx) error {
	var req dto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "holiday created", dto.FromHoliday(row))
}

// ListHolidays — GET /api/public/holidays?year=
func (ctl *OperatingHoursController) ListHolidays(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&ohModel.HolidayModel{})
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1900 || year > 2200 {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid year")
		}
		q = q.Where("EXTRACT(YEAR FROM holiday_date) = ?", year)
	}

	var rows []ohModel.HolidayModel
	if err := q.Order("holiday_date ASC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "holidays fetched", dto.FromHolidays(rows))
}
