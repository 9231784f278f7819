// file: internals/features/reservations/reservations/dto/reservation_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseDatetime(t *testing.T) {
	want := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	for _, raw := range []string{
		"2026-09-01T14:30:00Z",
		"2026-09-01 14:30:00",
		"2026-09-01 14:30",
	} {
		got, err := ParseDatetime(raw)
		if err != nil {
			t.Fatalf("ParseDatetime(%q): %v", raw, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseDatetime(%q) = %v, want %v", raw, got, want)
		}
	}

	// offset dinormalisasi ke UTC
	got, err := ParseDatetime("2026-09-01T14:30:00-05:00")
	if err != nil {
		t.Fatalf("ParseDatetime offset: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC)) {
		t.Errorf("offset tidak dinormalisasi: %v", got)
	}

	if _, err := ParseDatetime("01/09/2026"); err == nil {
		t.Error("format asing harus gagal")
	}
}

func TestToCreateInput(t *testing.T) {
	applicant := uuid.New()
	req := CreateReservationRequest{
		ReservationFieldID:      uuid.New(),
		ReservationActivityType: "  entrenamiento  ",
		ReservationStart:        "2026-09-01 09:00:00",
		ReservationEnd:          "2026-09-01 10:30:00",
	}

	in, err := req.ToCreateInput(applicant)
	if err != nil {
		t.Fatalf("ToCreateInput: %v", err)
	}
	if in.ApplicantID != applicant {
		t.Error("applicant tidak terisi")
	}
	if in.ActivityType != "entrenamiento" {
		t.Errorf("activity tidak di-trim: %q", in.ActivityType)
	}
	if got := in.EndAt.Sub(in.StartAt); got != 90*time.Minute {
		t.Errorf("durasi = %v", got)
	}
	if in.Priority != 0 {
		t.Errorf("priority default = %d", in.Priority)
	}
}

func TestToCreateInputEndBeforeStart(t *testing.T) {
	req := CreateReservationRequest{
		ReservationFieldID:      uuid.New(),
		ReservationActivityType: "partido",
		ReservationStart:        "2026-09-01 10:00:00",
		ReservationEnd:          "2026-09-01 10:00:00", // sama persis juga invalid
	}
	if _, err := req.ToCreateInput(uuid.New()); err != ErrEndBeforeStart {
		t.Errorf("err = %v, want ErrEndBeforeStart", err)
	}
}

func TestToUpdateInputPartial(t *testing.T) {
	start := "2026-09-02 08:00:00"
	req := UpdateReservationRequest{ReservationStart: &start}

	in, err := req.ToUpdateInput()
	if err != nil {
		t.Fatalf("ToUpdateInput: %v", err)
	}
	if in.StartAt == nil || in.EndAt != nil {
		t.Error("hanya start yang boleh terisi")
	}
	if in.ActivityType != nil {
		t.Error("activity harus nil kalau tidak dikirim")
	}
}
