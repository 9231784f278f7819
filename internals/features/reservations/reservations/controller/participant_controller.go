// file: internals/features/reservations/reservations/controller/participant_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"hoopingweek_backend/internals/features/reservations/reservations/dto"
	helper "hoopingweek_backend/internals/helpers"
)

// ListParticipants — GET /api/u/reservations/:id/participants
func (ctl *ReservationController) ListParticipants(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	rows, serr := ctl.Reservations.ListParticipants(c.Context(), id)
	if serr != nil {
		return writeServiceError(c, serr)
	}
	return helper.JsonOK(c, "participants fetched", dto.FromParticipants(rows))
}

// AddParticipant — POST /api/u/reservations/:id/participants
func (ctl *ReservationController) AddParticipant(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	row, serr := ctl.Reservations.AddParticipant(c.Context(), id, req.ParticipantUserID, req.ParticipantType, req.ParticipantTeamID)
	if serr != nil {
		return writeServiceError(c, serr)
	}
	return helper.JsonCreated(c, "participant added", dto.FromParticipant(row))
}

// RemoveParticipant — DELETE /api/u/reservations/:id/participants/:user_id
func (ctl *ReservationController) RemoveParticipant(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}
	if serr := ctl.Reservations.RemoveParticipant(c.Context(), id, userID); serr != nil {
		return writeServiceError(c, serr)
	}
	return helper.JsonDeleted(c, "participant removed", fiber.Map{
		"reservation_id": id,
		"user_id":        userID,
	})
}
