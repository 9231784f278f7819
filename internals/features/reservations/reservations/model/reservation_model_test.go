// file: internals/features/reservations/reservations/model/reservation_model_test.go
package model

import (
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestIsBusyBlocking(t *testing.T) {
	cases := []struct {
		status ReservationStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusRejected, false},
		{StatusCancelled, false},
		{StatusCompleted, false},
	}
	for _, tc := range cases {
		r := &ReservationModel{ReservationStatus: tc.status}
		if got := r.IsBusyBlocking(); got != tc.want {
			t.Errorf("IsBusyBlocking(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}

	// soft-delete mengeluarkan reservasi dari busy-blocking set walau approved
	deleted := &ReservationModel{
		ReservationStatus:    StatusApproved,
		ReservationDeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
	}
	if deleted.IsBusyBlocking() {
		t.Error("reservasi soft-deleted tidak boleh busy-blocking")
	}
}

func TestStatusValidAndTerminal(t *testing.T) {
	for _, s := range []ReservationStatus{
		StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted,
	} {
		if !s.Valid() {
			t.Errorf("%s harus valid", s)
		}
	}
	if ReservationStatus("archived").Valid() {
		t.Error("status asing tidak boleh valid")
	}

	for _, s := range []ReservationStatus{StatusRejected, StatusCancelled, StatusCompleted} {
		if !s.Terminal() {
			t.Errorf("%s harus terminal", s)
		}
	}
	if StatusPending.Terminal() || StatusApproved.Terminal() {
		t.Error("pending/approved bukan terminal")
	}
}
