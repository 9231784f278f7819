// file: internals/features/reservations/reservations/service/lifecycle.go
package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "hoopingweek_backend/internals/features/reservations/reservations/model"
	"hoopingweek_backend/internals/helpers/apperror"
)

// Tabel transisi status:
//
//	pending  → approved | rejected | cancelled
//	approved → rejected | cancelled | completed
//	rejected / cancelled / completed → (terminal)
//
// Catatan: completed sengaja tidak dijaga terhadap end_datetime (mengikuti
// perilaku sistem sumber; belum ada konfirmasi produk untuk guard temporal).
var allowedTransitions = map[m.ReservationStatus][]m.ReservationStatus{
	m.StatusPending:  {m.StatusApproved, m.StatusRejected, m.StatusCancelled},
	m.StatusApproved: {m.StatusRejected, m.StatusCancelled, m.StatusCompleted},
}

// CanTransition: cek tabel tanpa side effect.
func CanTransition(from, to m.ReservationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionInput: data pendamping transisi. ActorID wajib untuk approve dan
// cancel; Reason wajib untuk reject, opsional untuk cancel.
type TransitionInput struct {
	ActorID uuid.UUID
	Reason  string
	Now     time.Time
}

// ApplyTransition memutasi reservasi in-memory sesuai tabel + side data.
// Interval waktu tidak pernah disentuh di sini; perubahan jadwal lewat
// operasi update terpisah yang menjalankan ulang deteksi overlap.
func ApplyTransition(r *m.ReservationModel, to m.ReservationStatus, in TransitionInput) error {
	if !to.Valid() {
		return apperror.Newf(apperror.CodeInvalidArgument, "invalid status %q", string(to))
	}
	if !CanTransition(r.ReservationStatus, to) {
		return apperror.Newf(apperror.CodeInvalidTransition,
			"cannot transition reservation from %q to %q", string(r.ReservationStatus), string(to))
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	reason := strings.TrimSpace(in.Reason)

	switch to {
	case m.StatusApproved:
		if in.ActorID == uuid.Nil {
			return apperror.InvalidArgument("approved_by is required to approve")
		}
		actor := in.ActorID
		r.ReservationApprovedBy = &actor
		r.ReservationApprovedAt = &now

	case m.StatusRejected:
		if reason == "" {
			return apperror.InvalidArgument("rejection_reason is required to reject")
		}
		r.ReservationRejectedAt = &now
		r.ReservationRejectionReason = &reason

	case m.StatusCancelled:
		if in.ActorID == uuid.Nil {
			return apperror.InvalidArgument("cancelled_by is required to cancel")
		}
		actor := in.ActorID
		r.ReservationCancelledBy = &actor
		r.ReservationCancelledAt = &now
		if reason != "" {
			r.ReservationCancellationReason = &reason
		}

	case m.StatusCompleted:
		// tanpa side data
	}

	r.ReservationStatus = to
	return nil
}
