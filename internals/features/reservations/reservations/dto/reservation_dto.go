// file: internals/features/reservations/reservations/dto/reservation_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "hoopingweek_backend/internals/features/reservations/reservations/model"
	svc "hoopingweek_backend/internals/features/reservations/reservations/service"
)

/* =========================================================
   Helpers
   ========================================================= */

var (
	ErrInvalidDatetime = errors.New("invalid datetime (use RFC3339 or 'YYYY-MM-DD HH:MM:SS')")
	ErrEndBeforeStart  = errors.New("start_datetime must be before end_datetime")
)

// ParseDatetime menerima RFC3339 atau "2006-01-02 15:04:05" (dibaca sebagai UTC).
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02 15:04", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDatetime
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

// ---------- CREATE ----------
type CreateReservationRequest struct {
	ReservationFieldID      uuid.UUID `json:"reservation_field_id" validate:"required"`
	ReservationActivityType string    `json:"reservation_activity_type" validate:"required,max=80"`
	ReservationStart        string    `json:"reservation_start_datetime" validate:"required"`
	ReservationEnd          string    `json:"reservation_end_datetime" validate:"required"`
	ReservationPriority     *int      `json:"reservation_priority" validate:"omitempty,min=0,max=10"`
	ReservationNotes        *string   `json:"reservation_notes" validate:"omitempty,max=500"`
}

func (r CreateReservationRequest) ToCreateInput(applicantID uuid.UUID) (svc.CreateInput, error) {
	start, err := ParseDatetime(r.ReservationStart)
	if err != nil {
		return svc.CreateInput{}, err
	}
	end, err := ParseDatetime(r.ReservationEnd)
	if err != nil {
		return svc.CreateInput{}, err
	}
	if !start.Before(end) {
		return svc.CreateInput{}, ErrEndBeforeStart
	}

	priority := 0
	if r.ReservationPriority != nil {
		priority = *r.ReservationPriority
	}

	return svc.CreateInput{
		FieldID:      r.ReservationFieldID,
		ApplicantID:  applicantID,
		ActivityType: strings.TrimSpace(r.ReservationActivityType),
		StartAt:      start,
		EndAt:        end,
		Priority:     priority,
		Notes:        trimPtr(r.ReservationNotes),
	}, nil
}

// ---------- UPDATE / PATCH ----------
type UpdateReservationRequest struct {
	ReservationActivityType *string `json:"reservation_activity_type" validate:"omitempty,max=80"`
	ReservationStart        *string `json:"reservation_start_datetime" validate:"omitempty"`
	ReservationEnd          *string `json:"reservation_end_datetime" validate:"omitempty"`
	ReservationPriority     *int    `json:"reservation_priority" validate:"omitempty,min=0,max=10"`
	ReservationNotes        *string `json:"reservation_notes" validate:"omitempty,max=500"`
}

func (r UpdateReservationRequest) ToUpdateInput() (svc.UpdateInput, error) {
	out := svc.UpdateInput{
		ActivityType: trimPtr(r.ReservationActivityType),
		Priority:     r.ReservationPriority,
		Notes:        r.ReservationNotes,
	}
	if r.ReservationStart != nil {
		t, err := ParseDatetime(*r.ReservationStart)
		if err != nil {
			return svc.UpdateInput{}, err
		}
		out.StartAt = &t
	}
	if r.ReservationEnd != nil {
		t, err := ParseDatetime(*r.ReservationEnd)
		if err != nil {
			return svc.UpdateInput{}, err
		}
		out.EndAt = &t
	}
	return out, nil
}

// ---------- STATUS ----------
type ChangeStatusRequest struct {
	ReservationStatus string  `json:"reservation_status" validate:"required,oneof=approved rejected cancelled completed"`
	Reason            *string `json:"reason" validate:"omitempty,max=300"`
}

// ---------- OVERLAP CHECK ----------
type CheckOverlapRequest struct {
	ReservationFieldID uuid.UUID  `json:"reservation_field_id" validate:"required"`
	ReservationStart   string     `json:"reservation_start_datetime" validate:"required"`
	ReservationEnd     string     `json:"reservation_end_datetime" validate:"required"`
	ExcludeID          *uuid.UUID `json:"exclude_reservation_id" validate:"omitempty"`
}

// ---------- PARTICIPANTS ----------
type AddParticipantRequest struct {
	ParticipantUserID uuid.UUID  `json:"participant_user_id" validate:"required"`
	ParticipantType   string     `json:"participant_type" validate:"omitempty,oneof=individual team_member"`
	ParticipantTeamID *uuid.UUID `json:"participant_team_id" validate:"omitempty"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ReservationResponse struct {
	ReservationID            uuid.UUID  `json:"reservation_id"`
	ReservationFieldID       uuid.UUID  `json:"reservation_field_id"`
	ReservationApplicantID   uuid.UUID  `json:"reservation_applicant_id"`
	ReservationActivityType  string     `json:"reservation_activity_type"`
	ReservationStart         time.Time  `json:"reservation_start_datetime"`
	ReservationEnd           time.Time  `json:"reservation_end_datetime"`
	ReservationDurationHours float64    `json:"reservation_duration_hours"`
	ReservationStatus        string     `json:"reservation_status"`
	ReservationPriority      int        `json:"reservation_priority"`
	ReservationApprovedBy    *uuid.UUID `json:"reservation_approved_by,omitempty"`
	ReservationApprovedAt    *time.Time `json:"reservation_approved_at,omitempty"`
	ReservationRejectedAt    *time.Time `json:"reservation_rejected_at,omitempty"`
	ReservationRejection     *string    `json:"reservation_rejection_reason,omitempty"`
	ReservationCancelledBy   *uuid.UUID `json:"reservation_cancelled_by,omitempty"`
	ReservationCancelledAt   *time.Time `json:"reservation_cancelled_at,omitempty"`
	ReservationCancellation  *string    `json:"reservation_cancellation_reason,omitempty"`
	ReservationNotes         *string    `json:"reservation_notes,omitempty"`
	ReservationRequestDate   time.Time  `json:"reservation_request_date"`
}

func FromModel(r *m.ReservationModel) ReservationResponse {
	return ReservationResponse{
		ReservationID:            r.ReservationID,
		ReservationFieldID:       r.ReservationFieldID,
		ReservationApplicantID:   r.ReservationApplicantID,
		ReservationActivityType:  r.ReservationActivityType,
		ReservationStart:         r.ReservationStartAt,
		ReservationEnd:           r.ReservationEndAt,
		ReservationDurationHours: r.ReservationDurationHours,
		ReservationStatus:        string(r.ReservationStatus),
		ReservationPriority:      r.ReservationPriority,
		ReservationApprovedBy:    r.ReservationApprovedBy,
		ReservationApprovedAt:    r.ReservationApprovedAt,
		ReservationRejectedAt:    r.ReservationRejectedAt,
		ReservationRejection:     r.ReservationRejectionReason,
		ReservationCancelledBy:   r.ReservationCancelledBy,
		ReservationCancelledAt:   r.ReservationCancelledAt,
		ReservationCancellation:  r.ReservationCancellationReason,
		ReservationNotes:         r.ReservationNotes,
		ReservationRequestDate:   r.ReservationRequestDate,
	}
}

func FromModels(rows []m.ReservationModel) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

type OverlapResponse struct {
	HasConflict bool                  `json:"has_conflict"`
	Conflicts   []ReservationResponse `json:"conflicts"`
}

type TimeSlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func slotResponses(slots []svc.Slot) []TimeSlotResponse {
	out := make([]TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlotResponse{
			Start: svc.FormatMinutes(s.Start),
			End:   svc.FormatMinutes(s.End),
		})
	}
	return out
}

type OperatingWindowResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type AvailabilityResponse struct {
	FieldID        uuid.UUID                `json:"field_id"`
	Date           string                   `json:"date"`
	IsClosed       bool                     `json:"is_closed"`
	Reason         string                   `json:"reason,omitempty"`
	OperatingHours *OperatingWindowResponse `json:"operating_hours"`
	ReservedSlots  []TimeSlotResponse       `json:"reserved_slots"`
	AvailableSlots []TimeSlotResponse       `json:"available_slots"`
}

func FromAvailability(a *svc.Availability) AvailabilityResponse {
	out := AvailabilityResponse{
		FieldID:        a.FieldID,
		Date:           a.Date.Format("2006-01-02"),
		IsClosed:       a.Hours.Closed,
		Reason:         a.Hours.Reason,
		ReservedSlots:  []TimeSlotResponse{},
		AvailableSlots: []TimeSlotResponse{},
	}
	if a.Hours.Closed {
		return out
	}
	out.OperatingHours = &OperatingWindowResponse{
		Open:  svc.FormatMinutes(a.Hours.Open),
		Close: svc.FormatMinutes(a.Hours.Close),
	}
	out.ReservedSlots = slotResponses(a.Busy)
	out.AvailableSlots = slotResponses(a.Free)
	return out
}

type ParticipantResponse struct {
	ReservationParticipantID uuid.UUID  `json:"reservation_participant_id"`
	ReservationID            uuid.UUID  `json:"reservation_id"`
	ParticipantUserID        uuid.UUID  `json:"participant_user_id"`
	ParticipantType          string     `json:"participant_type"`
	ParticipantTeamID        *uuid.UUID `json:"participant_team_id,omitempty"`
}

func FromParticipant(p *m.ReservationParticipantModel) ParticipantResponse {
	return ParticipantResponse{
		ReservationParticipantID: p.ReservationParticipantID,
		ReservationID:            p.ReservationParticipantReservationID,
		ParticipantUserID:        p.ReservationParticipantUserID,
		ParticipantType:          p.ReservationParticipantType,
		ParticipantTeamID:        p.ReservationParticipantTeamID,
	}
}

func FromParticipants(rows []m.ReservationParticipantModel) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromParticipant(&rows[i]))
	}
	return out
}
