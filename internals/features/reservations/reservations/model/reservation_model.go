// file: internals/features/reservations/reservations/model/reservation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// BusyBlockingStatuses: status yang memblokir ketersediaan lapangan.
var BusyBlockingStatuses = []ReservationStatus{StatusPending, StatusApproved}

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal: tidak ada transisi keluar dari status ini.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ReservationModel: ledger reservasi. Interval waktu half-open [start, end) —
// end tepat sama dengan start reservasi lain bukan bentrok.
type ReservationModel struct {
	ReservationID uuid.UUID `gorm:"column:reservation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reservation_id"`

	ReservationFieldID     uuid.UUID `gorm:"column:reservation_field_id;type:uuid;not null;index:idx_reservations_field_window" json:"reservation_field_id"`
	ReservationApplicantID uuid.UUID `gorm:"column:reservation_applicant_id;type:uuid;not null;index" json:"reservation_applicant_id"`

	ReservationActivityType string `gorm:"column:reservation_activity_type;type:varchar(80);not null" json:"reservation_activity_type"`

	ReservationStartAt       time.Time `gorm:"column:reservation_start_at;type:timestamptz;not null;index:idx_reservations_field_window" json:"reservation_start_at"`
	ReservationEndAt         time.Time `gorm:"column:reservation_end_at;type:timestamptz;not null" json:"reservation_end_at"`
	ReservationDurationHours float64   `gorm:"column:reservation_duration_hours;type:numeric(6,2);not null" json:"reservation_duration_hours"`

	ReservationStatus   ReservationStatus `gorm:"column:reservation_status;type:varchar(20);not null;default:'pending';index" json:"reservation_status"`
	ReservationPriority int               `gorm:"column:reservation_priority;not null;default:0" json:"reservation_priority"`

	ReservationApprovedBy *uuid.UUID `gorm:"column:reservation_approved_by;type:uuid" json:"reservation_approved_by,omitempty"`
	ReservationApprovedAt *time.Time `gorm:"column:reservation_approved_at;type:timestamptz" json:"reservation_approved_at,omitempty"`

	ReservationRejectedAt      *time.Time `gorm:"column:reservation_rejected_at;type:timestamptz" json:"reservation_rejected_at,omitempty"`
	ReservationRejectionReason *string    `gorm:"column:reservation_rejection_reason;type:varchar(300)" json:"reservation_rejection_reason,omitempty"`

	ReservationCancelledBy        *uuid.UUID `gorm:"column:reservation_cancelled_by;type:uuid" json:"reservation_cancelled_by,omitempty"`
	ReservationCancelledAt        *time.Time `gorm:"column:reservation_cancelled_at;type:timestamptz" json:"reservation_cancelled_at,omitempty"`
	ReservationCancellationReason *string    `gorm:"column:reservation_cancellation_reason;type:varchar(300)" json:"reservation_cancellation_reason,omitempty"`

	ReservationNotes *string `gorm:"column:reservation_notes;type:varchar(500)" json:"reservation_notes,omitempty"`

	ReservationRequestDate time.Time      `gorm:"column:reservation_request_date;type:timestamptz;not null;autoCreateTime" json:"reservation_request_date"`
	ReservationUpdatedAt   time.Time      `gorm:"column:reservation_updated_at;type:timestamptz;not null;autoUpdateTime" json:"reservation_updated_at"`
	ReservationDeletedAt   gorm.DeletedAt `gorm:"column:reservation_deleted_at;index" json:"reservation_deleted_at,omitempty"`
}

func (ReservationModel) TableName() string { return "reservations" }

// IsBusyBlocking: ikut dihitung overlap/availability selama belum soft-delete
// dan statusnya pending/approved.
func (m *ReservationModel) IsBusyBlocking() bool {
	if m.ReservationDeletedAt.Valid {
		return false
	}
	return m.ReservationStatus == StatusPending || m.ReservationStatus == StatusApproved
}
