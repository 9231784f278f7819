// file: internals/databases/database_test.go
package database

import (
	"strings"
	"testing"

	resvModel "hoopingweek_backend/internals/features/reservations/reservations/model"
)

// DDL backstop anti double-booking harus selaras dengan predikat busy-blocking
// yang dipakai query overlap (status pending/approved, belum soft-delete).
func TestReservationNoOverlapDDL(t *testing.T) {
	ddl := ReservationNoOverlapDDL()

	for _, frag := range []string{
		"ADD CONSTRAINT uq_reservations_no_overlap",
		"EXCLUDE USING gist",
		"reservation_field_id WITH =",
		"tstzrange(reservation_start_at, reservation_end_at) WITH &&",
		"reservation_deleted_at IS NULL",
	} {
		if !strings.Contains(ddl, frag) {
			t.Errorf("DDL tidak memuat %q:\n%s", frag, ddl)
		}
	}

	for _, s := range resvModel.BusyBlockingStatuses {
		if !strings.Contains(ddl, "'"+string(s)+"'") {
			t.Errorf("DDL tidak memuat status busy-blocking %q", s)
		}
	}
	// status terminal tidak boleh ikut memblokir di level DB
	for _, s := range []resvModel.ReservationStatus{
		resvModel.StatusRejected, resvModel.StatusCancelled, resvModel.StatusCompleted,
	} {
		if strings.Contains(ddl, "'"+string(s)+"'") {
			t.Errorf("DDL memuat status terminal %q", s)
		}
	}

	// idempoten: dibungkus guard pg_constraint
	if !strings.Contains(ddl, "pg_constraint") {
		t.Error("DDL harus idempoten (guard pg_constraint)")
	}
}
