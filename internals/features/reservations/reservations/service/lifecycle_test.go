// file: internals/features/reservations/reservations/service/lifecycle_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "hoopingweek_backend/internals/features/reservations/reservations/model"
	"hoopingweek_backend/internals/helpers/apperror"
)

func TestCanTransitionTable(t *testing.T) {
	all := []m.ReservationStatus{
		m.StatusPending, m.StatusApproved, m.StatusRejected,
		m.StatusCancelled, m.StatusCompleted,
	}
	allowed := map[[2]m.ReservationStatus]bool{
		{m.StatusPending, m.StatusApproved}:   true,
		{m.StatusPending, m.StatusRejected}:   true,
		{m.StatusPending, m.StatusCancelled}:  true,
		{m.StatusApproved, m.StatusRejected}:  true,
		{m.StatusApproved, m.StatusCancelled}: true,
		{m.StatusApproved, m.StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]m.ReservationStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestApplyTransitionApprove(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	r := &m.ReservationModel{ReservationStatus: m.StatusPending}

	if err := ApplyTransition(r, m.StatusApproved, TransitionInput{ActorID: actor, Now: now}); err != nil {
		t.Fatalf("approve gagal: %v", err)
	}
	if r.ReservationStatus != m.StatusApproved {
		t.Errorf("status = %s", r.ReservationStatus)
	}
	if r.ReservationApprovedBy == nil || *r.ReservationApprovedBy != actor {
		t.Error("approved_by tidak terisi")
	}
	if r.ReservationApprovedAt == nil || !r.ReservationApprovedAt.Equal(now) {
		t.Error("approved_at tidak terisi")
	}
}

func TestApplyTransitionApproveWithoutActor(t *testing.T) {
	r := &m.ReservationModel{ReservationStatus: m.StatusPending}
	err := ApplyTransition(r, m.StatusApproved, TransitionInput{})
	if err == nil {
		t.Fatal("approve tanpa actor harus gagal")
	}
	if apperror.CodeOf(err) != apperror.CodeInvalidArgument {
		t.Errorf("code = %s", apperror.CodeOf(err))
	}
	if r.ReservationStatus != m.StatusPending {
		t.Error("status tidak boleh berubah kalau transisi gagal")
	}
}

func TestApplyTransitionRejectRequiresReason(t *testing.T) {
	r := &m.ReservationModel{ReservationStatus: m.StatusPending}
	if err := ApplyTransition(r, m.StatusRejected, TransitionInput{Reason: "   "}); err == nil {
		t.Fatal("reject tanpa alasan harus gagal")
	}

	if err := ApplyTransition(r, m.StatusRejected, TransitionInput{Reason: "jadwal bentrok acara kampus"}); err != nil {
		t.Fatalf("reject gagal: %v", err)
	}
	if r.ReservationStatus != m.StatusRejected {
		t.Errorf("status = %s", r.ReservationStatus)
	}
	if r.ReservationRejectionReason == nil || *r.ReservationRejectionReason != "jadwal bentrok acara kampus" {
		t.Error("rejection_reason tidak terisi")
	}
	if r.ReservationRejectedAt == nil {
		t.Error("rejected_at tidak terisi")
	}
}

func TestApplyTransitionCancel(t *testing.T) {
	actor := uuid.New()
	r := &m.ReservationModel{ReservationStatus: m.StatusApproved}

	if err := ApplyTransition(r, m.StatusCancelled, TransitionInput{ActorID: actor}); err != nil {
		t.Fatalf("cancel gagal: %v", err)
	}
	if r.ReservationCancelledBy == nil || *r.ReservationCancelledBy != actor {
		t.Error("cancelled_by tidak terisi")
	}
	if r.ReservationCancelledAt == nil {
		t.Error("cancelled_at tidak terisi")
	}
	// alasan opsional untuk cancel
	if r.ReservationCancellationReason != nil {
		t.Error("cancellation_reason harus kosong tanpa alasan")
	}
}

func TestApplyTransitionComplete(t *testing.T) {
	r := &m.ReservationModel{ReservationStatus: m.StatusApproved}
	if err := ApplyTransition(r, m.StatusCompleted, TransitionInput{}); err != nil {
		t.Fatalf("complete gagal: %v", err)
	}
	if r.ReservationStatus != m.StatusCompleted {
		t.Errorf("status = %s", r.ReservationStatus)
	}
}

func TestApplyTransitionFromTerminal(t *testing.T) {
	for _, from := range []m.ReservationStatus{m.StatusRejected, m.StatusCancelled, m.StatusCompleted} {
		r := &m.ReservationModel{ReservationStatus: from}
		err := ApplyTransition(r, m.StatusApproved, TransitionInput{ActorID: uuid.New()})
		if err == nil {
			t.Fatalf("transisi dari %s harus gagal", from)
		}
		if apperror.CodeOf(err) != apperror.CodeInvalidTransition {
			t.Errorf("code dari %s = %s, want INVALID_TRANSITION", from, apperror.CodeOf(err))
		}
	}
}

func TestApplyTransitionInvalidStatus(t *testing.T) {
	r := &m.ReservationModel{ReservationStatus: m.StatusPending}
	err := ApplyTransition(r, m.ReservationStatus("archived"), TransitionInput{})
	if err == nil {
		t.Fatal("status tidak dikenal harus gagal")
	}
	if apperror.CodeOf(err) != apperror.CodeInvalidArgument {
		t.Errorf("code = %s", apperror.CodeOf(err))
	}
}

// pending → completed tidak boleh, walau completed valid dari approved.
func TestApplyTransitionPendingToCompleted(t *testing.T) {
	r := &m.ReservationModel{ReservationStatus: m.StatusPending}
	err := ApplyTransition(r, m.StatusCompleted, TransitionInput{})
	if apperror.CodeOf(err) != apperror.CodeInvalidTransition {
		t.Errorf("code = %s, want INVALID_TRANSITION", apperror.CodeOf(err))
	}
}
