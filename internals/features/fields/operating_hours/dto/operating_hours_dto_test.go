// file: internals/features/fields/operating_hours/dto/operating_hours_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestCreateOperatingHourToModel(t *testing.T) {
	req := CreateOperatingHourRequest{
		FieldID:   uuid.New(),
		DayOfWeek: 1,
		OpenTime:  "08:00",
		CloseTime: "20:00",
	}
	row, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if row.FieldOperatingHourOpenTime.Minutes() != 480 || row.FieldOperatingHourCloseTime.Minutes() != 1200 {
		t.Errorf("jam salah: %d-%d", row.FieldOperatingHourOpenTime.Minutes(), row.FieldOperatingHourCloseTime.Minutes())
	}
}

func TestCreateOperatingHourOpenNotBeforeClose(t *testing.T) {
	req := CreateOperatingHourRequest{
		FieldID:   uuid.New(),
		DayOfWeek: 1,
		OpenTime:  "20:00",
		CloseTime: "08:00",
	}
	if _, err := req.ToModel(); err != ErrOpenNotLtClose {
		t.Errorf("err = %v, want ErrOpenNotLtClose", err)
	}

	req.CloseTime = "20:00" // open == close juga invalid
	if _, err := req.ToModel(); err != ErrOpenNotLtClose {
		t.Errorf("err = %v, want ErrOpenNotLtClose", err)
	}
}

func TestCreateScheduleExceptionSpecialHours(t *testing.T) {
	open, cls := "10:00", "14:00"
	req := CreateScheduleExceptionRequest{
		FieldID:         uuid.New(),
		Date:            "2026-12-24",
		Reason:          "torneo navideño",
		SpecialOpenTime: &open, SpecialCloseTime: &cls,
	}
	row, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if !row.HasSpecialHours() {
		t.Fatal("harus punya jam spesial")
	}
	// jam spesial implisit menimpa jadwal mingguan
	if !row.FieldScheduleExceptionOverridesRegular {
		t.Error("overrides_regular harus true kalau ada jam spesial")
	}
}

func TestCreateScheduleExceptionHalfSpecial(t *testing.T) {
	open := "10:00"
	req := CreateScheduleExceptionRequest{
		FieldID:         uuid.New(),
		Date:            "2026-12-24",
		Reason:          "torneo",
		SpecialOpenTime: &open,
	}
	if _, err := req.ToModel(); err != ErrSpecialHalfOpen {
		t.Errorf("err = %v, want ErrSpecialHalfOpen", err)
	}
}

func TestCreateHolidayToModel(t *testing.T) {
	req := CreateHolidayRequest{Date: "2027-01-01", Name: "Año Nuevo"}
	row, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if !row.HolidayIsNational {
		t.Error("is_national default harus true")
	}
	if got := FromHoliday(row).Date; got != "2027-01-01" {
		t.Errorf("date roundtrip = %q", got)
	}

	req.Date = "01-01-2027"
	if _, err := req.ToModel(); err != ErrInvalidDate {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}
