// file: internals/features/reservations/reservations/service/availability_logic_test.go
package service

import (
	"testing"
	"time"

	ohModel "hoopingweek_backend/internals/features/fields/operating_hours/model"
	"hoopingweek_backend/internals/helpers/dbtime"
)

func todPtr(m int) *dbtime.Tod {
	t := dbtime.FromMinutes(m)
	return &t
}

func weeklyRule(open, close int) *ohModel.FieldOperatingHourModel {
	return &ohModel.FieldOperatingHourModel{
		FieldOperatingHourOpenTime:  dbtime.FromMinutes(open),
		FieldOperatingHourCloseTime: dbtime.FromMinutes(close),
	}
}

func TestResolveEffectiveHoursWeeklyRule(t *testing.T) {
	got := ResolveEffectiveHours(nil, nil, weeklyRule(480, 1200))
	if got.Closed {
		t.Fatal("harus buka")
	}
	if got.Open != 480 || got.Close != 1200 {
		t.Errorf("jam = %d-%d", got.Open, got.Close)
	}
}

func TestResolveEffectiveHoursNoRule(t *testing.T) {
	got := ResolveEffectiveHours(nil, nil, nil)
	if !got.Closed {
		t.Fatal("tanpa rule harus tutup")
	}
	if got.Reason != "no schedule configured" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestResolveEffectiveHoursExceptionFullClosure(t *testing.T) {
	exc := &ohModel.FieldScheduleExceptionModel{
		FieldScheduleExceptionReason:           "mantenimiento",
		FieldScheduleExceptionOverridesRegular: true,
	}
	got := ResolveEffectiveHours(nil, exc, weeklyRule(480, 1200))
	if !got.Closed {
		t.Fatal("exception tutup penuh harus menang atas weekly rule")
	}
	if got.Reason != "mantenimiento" {
		t.Errorf("reason = %q", got.Reason)
	}
}

func TestResolveEffectiveHoursExceptionSpecialHours(t *testing.T) {
	exc := &ohModel.FieldScheduleExceptionModel{
		FieldScheduleExceptionReason:           "torneo",
		FieldScheduleExceptionOverridesRegular: true,
		FieldScheduleExceptionSpecialOpenTime:  todPtr(600),
		FieldScheduleExceptionSpecialCloseTime: todPtr(840),
	}
	got := ResolveEffectiveHours(nil, exc, weeklyRule(480, 1200))
	if got.Closed {
		t.Fatal("jam spesial harus buka")
	}
	if got.Open != 600 || got.Close != 840 {
		t.Errorf("jam spesial = %d-%d, want 600-840", got.Open, got.Close)
	}
}

// exception yang tidak menimpa jadwal (informasional) tetap pakai weekly rule.
func TestResolveEffectiveHoursExceptionNonOverriding(t *testing.T) {
	exc := &ohModel.FieldScheduleExceptionModel{
		FieldScheduleExceptionReason: "aviso",
	}
	got := ResolveEffectiveHours(nil, exc, weeklyRule(480, 1200))
	if got.Closed || got.Open != 480 || got.Close != 1200 {
		t.Errorf("exception non-override harus jatuh ke weekly rule, got %+v", got)
	}
}

// Pembulatan konservatif: detik sisa tidak boleh membebaskan menit yang masih
// tersentuh reservasi (start turun, end naik).
func TestDayMinuteSpan(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m, s int) time.Time {
		return time.Date(2026, 9, 1, h, m, s, 0, time.UTC)
	}

	cases := []struct {
		name       string
		start, end time.Time
		want       Slot
	}{
		{"menit bulat", at(9, 0, 0), at(10, 0, 0), Slot{Start: 540, End: 600}},
		{"end dengan detik dibulatkan naik", at(9, 0, 0), at(9, 59, 59), Slot{Start: 540, End: 600}},
		{"start dengan detik dibulatkan turun", at(9, 0, 30), at(10, 0, 0), Slot{Start: 540, End: 600}},
		{"mulai sebelum tanggal di-clamp", day.Add(-2 * time.Hour), at(1, 0, 0), Slot{Start: 0, End: 60}},
		{"selesai lewat tengah malam di-clamp", at(23, 0, 0), day.Add(26 * time.Hour), Slot{Start: 1380, End: 1440}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dayMinuteSpan(day, tc.start, tc.end); got != tc.want {
				t.Errorf("dayMinuteSpan = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveEffectiveHoursHolidayWins(t *testing.T) {
	hol := &ohModel.HolidayModel{HolidayName: "Día de la Independencia"}
	exc := &ohModel.FieldScheduleExceptionModel{
		FieldScheduleExceptionReason:           "torneo",
		FieldScheduleExceptionOverridesRegular: true,
		FieldScheduleExceptionSpecialOpenTime:  todPtr(600),
		FieldScheduleExceptionSpecialCloseTime: todPtr(840),
	}

	got := ResolveEffectiveHours(hol, exc, weeklyRule(480, 1200))
	if !got.Closed {
		t.Fatal("holiday harus menang atas exception dan weekly rule")
	}
	if got.Reason != "Día de la Independencia" {
		t.Errorf("reason = %q", got.Reason)
	}
}
