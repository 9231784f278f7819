// file: internals/features/reservations/reservations/service/availability_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	fieldModel "hoopingweek_backend/internals/features/fields/fields/model"
	ohModel "hoopingweek_backend/internals/features/fields/operating_hours/model"
	resvModel "hoopingweek_backend/internals/features/reservations/reservations/model"
	"hoopingweek_backend/internals/helpers/apperror"
)

// EffectiveHours: hasil penerapan presedensi holiday > exception > weekly rule.
type EffectiveHours struct {
	Closed bool
	Reason string
	Open   int // menit sejak 00:00, valid kalau !Closed
	Close  int
}

// Availability: timeline satu lapangan untuk satu tanggal.
type Availability struct {
	FieldID uuid.UUID
	Date    time.Time // civil date, midnight UTC
	Hours   EffectiveHours
	Busy    []Slot
	Free    []Slot
}

// ResolveEffectiveHours menerapkan presedensi jam efektif, urutan ketat:
// 1. holiday → tutup (menimpa segalanya; exception per-field tidak bisa
//    membuka kembali hari libur — mengikuti sistem sumber);
// 2. exception → tutup penuh, atau jam spesial menggantikan jam mingguan;
// 3. weekly rule; tidak ada rule → tutup "no schedule configured".
func ResolveEffectiveHours(
	holiday *ohModel.HolidayModel,
	exception *ohModel.FieldScheduleExceptionModel,
	rule *ohModel.FieldOperatingHourModel,
) EffectiveHours {
	if holiday != nil {
		return EffectiveHours{Closed: true, Reason: holiday.HolidayName}
	}
	if exception != nil {
		if exception.HasSpecialHours() {
			return EffectiveHours{
				Open:  exception.FieldScheduleExceptionSpecialOpenTime.Minutes(),
				Close: exception.FieldScheduleExceptionSpecialCloseTime.Minutes(),
			}
		}
		if exception.FieldScheduleExceptionOverridesRegular {
			return EffectiveHours{Closed: true, Reason: exception.FieldScheduleExceptionReason}
		}
	}
	if rule == nil {
		return EffectiveHours{Closed: true, Reason: "no schedule configured"}
	}
	return EffectiveHours{
		Open:  rule.FieldOperatingHourOpenTime.Minutes(),
		Close: rule.FieldOperatingHourCloseTime.Minutes(),
	}
}

type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Resolve menghitung free/busy timeline lapangan untuk satu tanggal.
func (s *AvailabilityService) Resolve(ctx context.Context, fieldID uuid.UUID, date time.Time) (*Availability, error) {
	db := s.DB.WithContext(ctx)

	var field fieldModel.FieldModel
	if err := db.First(&field, "field_id = ?", fieldID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("field not found")
		}
		return nil, err
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	civil := datatypes.Date(day)

	var holiday *ohModel.HolidayModel
	{
		var h ohModel.HolidayModel
		err := db.First(&h, "holiday_date = ?", civil).Error
		switch {
		case err == nil:
			holiday = &h
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	var exception *ohModel.FieldScheduleExceptionModel
	{
		var e ohModel.FieldScheduleExceptionModel
		err := db.First(&e,
			"field_schedule_exception_field_id = ? AND field_schedule_exception_date = ?",
			fieldID, civil).Error
		switch {
		case err == nil:
			exception = &e
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	var rule *ohModel.FieldOperatingHourModel
	{
		var r ohModel.FieldOperatingHourModel
		err := db.First(&r,
			"field_operating_hour_field_id = ? AND field_operating_hour_day_of_week = ?",
			fieldID, int(day.Weekday())).Error
		switch {
		case err == nil:
			rule = &r
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	hours := ResolveEffectiveHours(holiday, exception, rule)
	out := &Availability{FieldID: fieldID, Date: day, Hours: hours}
	if hours.Closed {
		return out, nil
	}

	busy, err := s.busySlotsForDay(db, fieldID, day)
	if err != nil {
		return nil, err
	}

	clipped := make([]Slot, 0, len(busy))
	for _, b := range busy {
		if c, ok := ClipSlot(b, hours.Open, hours.Close); ok {
			clipped = append(clipped, c)
		}
	}
	out.Busy = MergeSlots(clipped)
	out.Free = FreeSlots(hours.Open, hours.Close, out.Busy)
	return out, nil
}

// busySlotsForDay mengambil reservasi busy-blocking yang menyentuh tanggal ini,
// direduksi ke menit-harian dan di-clip ke [00:00, 24:00) tanggal tsb.
func (s *AvailabilityService) busySlotsForDay(db *gorm.DB, fieldID uuid.UUID, day time.Time) ([]Slot, error) {
	dayEnd := day.Add(24 * time.Hour)

	var rows []resvModel.ReservationModel
	if err := db.
		Where("reservation_field_id = ?", fieldID).
		Where("reservation_status IN ?", resvModel.BusyBlockingStatuses).
		Where("reservation_start_at < ? AND reservation_end_at > ?", dayEnd, day).
		Order("reservation_start_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(rows))
	for _, r := range rows {
		if !r.IsBusyBlocking() {
			continue
		}
		s := dayMinuteSpan(day, r.ReservationStartAt.UTC(), r.ReservationEndAt.UTC())
		if !s.Empty() {
			slots = append(slots, s)
		}
	}
	return slots, nil
}

const minutesPerDay = 24 * 60

// dayMinuteSpan mereduksi [start, end) ke menit harian relatif day, dibulatkan
// konservatif: start ke bawah, end ke atas, lalu di-clamp ke [0, 1440].
// Detik sisa (RFC3339 mengizinkan sub-menit) tidak boleh membebaskan menitnya.
func dayMinuteSpan(day time.Time, start, end time.Time) Slot {
	startMin := int(start.Sub(day) / time.Minute)
	endMin := int((end.Sub(day) + time.Minute - time.Nanosecond) / time.Minute)
	if startMin < 0 {
		startMin = 0
	}
	if endMin > minutesPerDay {
		endMin = minutesPerDay
	}
	return Slot{Start: startMin, End: endMin}
}
