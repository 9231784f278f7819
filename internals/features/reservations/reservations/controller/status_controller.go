// file: internals/features/reservations/reservations/controller/status_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hoopingweek_backend/internals/features/reservations/reservations/dto"
	resvModel "hoopingweek_backend/internals/features/reservations/reservations/model"
	helper "hoopingweek_backend/internals/helpers"
	"hoopingweek_backend/internals/middlewares/auth"
)

/* =========================================================
   Lifecycle status
   =========================================================
   Transisi yang diizinkan ditegakkan di service (state machine);
   controller hanya mengurus siapa boleh minta transisi apa:
   - approve/reject/complete → manager/admin (route /api/a)
   - cancel → manager/admin, atau athlete pemilik reservasi
   ========================================================= */

// ChangeStatus — PATCH /api/a/reservations/:id/status (body bebas pilih status)
func (ctl *ReservationController) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	return ctl.applyStatus(c, id, resvModel.ReservationStatus(req.ReservationStatus), req.Reason)
}

// Approve — POST /api/a/reservations/:id/approve
func (ctl *ReservationController) Approve(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	return ctl.applyStatus(c, id, resvModel.StatusApproved, nil)
}

// Reject — POST /api/a/reservations/:id/reject (reason wajib)
func (ctl *ReservationController) Reject(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	return ctl.applyStatus(c, id, resvModel.StatusRejected, req.Reason)
}

// Cancel — POST /api/u/reservations/:id/cancel
// Athlete hanya boleh membatalkan reservasi miliknya sendiri.
func (ctl *ReservationController) Cancel(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if !auth.IsManagerOrAdmin(c) {
		if denied := ctl.ensureOwner(c, id); denied != nil {
			return denied
		}
	}
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		// body kosong sah untuk cancel
		req.Reason = nil
	}
	return ctl.applyStatus(c, id, resvModel.StatusCancelled, req.Reason)
}

// Complete — POST /api/a/reservations/:id/complete
func (ctl *ReservationController) Complete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	return ctl.applyStatus(c, id, resvModel.StatusCompleted, nil)
}

func (ctl *ReservationController) applyStatus(c *fiber.Ctx, id uuid.UUID, to resvModel.ReservationStatus, reason *string) error {
	actorID, err := auth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	r := ""
	if reason != nil {
		r = *reason
	}

	updated, serr := ctl.Reservations.ChangeStatus(c.Context(), id, to, actorID, r)
	if serr != nil {
		return writeServiceError(c, serr)
	}
	return helper.JsonUpdated(c, "reservation "+string(to), dto.FromModel(updated))
}
