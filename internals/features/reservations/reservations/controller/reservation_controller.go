// file: internals/features/reservations/reservations/controller/reservation_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hoopingweek_backend/internals/features/reservations/reservations/dto"
	resvModel "hoopingweek_backend/internals/features/reservations/reservations/model"
	"hoopingweek_backend/internals/features/reservations/reservations/service"
	helper "hoopingweek_backend/internals/helpers"
	"hoopingweek_backend/internals/helpers/apperror"
	"hoopingweek_backend/internals/middlewares/auth"
)

type ReservationController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	Reservations *service.ReservationService
	Availability *service.AvailabilityService
	Overlaps     *service.OverlapService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:           db,
		Validate:     validator.New(),
		Reservations: service.NewReservationService(db),
		Availability: service.NewAvailabilityService(db),
		Overlaps:     service.NewOverlapService(db),
	}
}

/* =========================================================
   Error plumbing
   ========================================================= */

// writeServiceError: AppError → status + error_code; sisanya dianggap error DB.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ae *apperror.AppError
	if errors.As(err, &ae) {
		return helper.JsonErrorCode(c, apperror.HTTPStatus(err), string(ae.Code), ae.Message)
	}
	return helper.WritePGError(c, err)
}

// writeConflict: 409 dengan daftar reservasi yang bentrok di body.
func writeConflict(c *fiber.Ctx, message string, conflicts []resvModel.ReservationModel) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"success":    false,
		"message":    message,
		"error_code": string(apperror.CodeConflict),
		"conflicts":  dto.FromModels(conflicts),
	})
}

func validationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], "failed on '"+fe.Tag()+"'")
		}
	}
	return out
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

/* =========================================================
   1) CREATE — POST /api/u/reservations
   ========================================================= */

func (ctl *ReservationController) Create(c *fiber.Ctx) error {
	actorID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	in, err := req.ToCreateInput(actorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	created, conflicts, err := ctl.Reservations.Create(c.Context(), in)
	if err != nil {
		if len(conflicts) > 0 {
			return writeConflict(c, err.Error(), conflicts)
		}
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "reservation created", dto.FromModel(created))
}

/* =========================================================
   2) LIST — GET /api/u/reservations
   ========================================================= */

func (ctl *ReservationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	filter := service.ListFilter{Limit: paging.Limit, Offset: paging.Offset}

	if raw := strings.TrimSpace(c.Query("field_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid field_id")
		}
		filter.FieldID = &id
	}
	if raw := strings.TrimSpace(c.Query("applicant_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid applicant_id")
		}
		filter.ApplicantID = &id
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := resvModel.ReservationStatus(raw)
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid status")
		}
		filter.Status = &st
	}
	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		t, err := dto.ParseDatetime(raw + " 00:00:00")
		if err != nil {
			t, err = dto.ParseDatetime(raw)
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date_from")
		}
		filter.DateFrom = &t
	}
	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		t, err := dto.ParseDatetime(raw + " 23:59:59")
		if err != nil {
			t, err = dto.ParseDatetime(raw)
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date_to")
		}
		filter.DateTo = &t
	}

	// Athlete hanya melihat reservasinya sendiri; manager/admin bebas filter.
	if !auth.IsManagerOrAdmin(c) {
		actorID, err := auth.GetUserID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		filter.ApplicantID = &actorID
	}

	rows, total, err := ctl.Reservations.List(c.Context(), filter)
	if err != nil {
		return writeServiceError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "reservations fetched", dto.FromModels(rows), &pagination)
}

/* =========================================================
   3) DETAIL — GET /api/u/reservations/:id
   ========================================================= */

func (ctl *ReservationController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	r, serr := ctl.Reservations.GetByID(c.Context(), id)
	if serr != nil {
		return writeServiceError(c, serr)
	}
	return helper.JsonOK(c, "reservation fetched", dto.FromModel(r))
}

/* =========================================================
   4) UPDATE — PATCH /api/u/reservations/:id
   ========================================================= */

func (ctl *ReservationController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	in, err := req.ToUpdateInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Athlete hanya boleh mengubah reservasi miliknya sendiri.
	if !auth.IsManagerOrAdmin(c) {
		if denied := ctl.ensureOwner(c, id); denied != nil {
			return denied
		}
	}

	updated, conflicts, serr := ctl.Reservations.Update(c.Context(), id, in)
	if serr != nil {
		if len(conflicts) > 0 {
			return writeConflict(c, serr.Error(), conflicts)
		}
		return writeServiceError(c, serr)
	}
	return helper.JsonUpdated(c, "reservation updated", dto.FromModel(updated))
}

/* =========================================================
   5) DELETE — DELETE /api/a/reservations/:id?force=true
   ========================================================= */

func (ctl *ReservationController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	force := strings.EqualFold(c.Query("force"), "true")

	if serr := ctl.Reservations.Delete(c.Context(), id, force); serr != nil {
		return writeServiceError(c, serr)
	}
	if force {
		return helper.JsonDeleted(c, "reservation permanently deleted", fiber.Map{"reservation_id": id})
	}
	return helper.JsonDeleted(c, "reservation deleted", fiber.Map{"reservation_id": id})
}

/* =========================================================
   6) OVERLAP CHECK — POST /api/u/reservations/check-overlap
   ========================================================= */

func (ctl *ReservationController) CheckOverlap(c *fiber.Ctx) error {
	var req dto.CheckOverlapRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	start, err := dto.ParseDatetime(req.ReservationStart)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := dto.ParseDatetime(req.ReservationEnd)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	conflicts, serr := ctl.Overlaps.FindConflicts(c.Context(), req.ReservationFieldID, start, end, req.ExcludeID)
	if serr != nil {
		return writeServiceError(c, serr)
	}
	return helper.JsonOK(c, "overlap check done", dto.OverlapResponse{
		HasConflict: len(conflicts) > 0,
		Conflicts:   dto.FromModels(conflicts),
	})
}

/* =========================================================
   Ownership guard
   ========================================================= */

func (ctl *ReservationController) ensureOwner(c *fiber.Ctx, reservationID uuid.UUID) error {
	actorID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	r, serr := ctl.Reservations.GetByID(c.Context(), reservationID)
	if serr != nil {
		return writeServiceError(c, serr)
	}
	if r.ReservationApplicantID != actorID {
		return helper.JsonError(c, fiber.StatusForbidden, "not your reservation")
	}
	return nil
}
