// file: internals/features/fields/operating_hours/dto/operating_hours_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "hoopingweek_backend/internals/features/fields/operating_hours/model"
	"hoopingweek_backend/internals/helpers/dbtime"
)

var (
	ErrInvalidTime     = errors.New("invalid time (use HH:MM)")
	ErrInvalidDate     = errors.New("invalid date (use YYYY-MM-DD)")
	ErrOpenNotLtClose  = errors.New("open_time must be before close_time")
	ErrSpecialHalfOpen = errors.New("special_open_time and special_close_time must be set together")
)

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, ErrInvalidDate
	}
	return datatypes.Date(t), nil
}

/* =========================================================
   1) Weekly rules
   ========================================================= */

type CreateOperatingHourRequest struct {
	FieldID   uuid.UUID `json:"field_operating_hour_field_id" validate:"required"`
	DayOfWeek int       `json:"field_operating_hour_day_of_week" validate:"min=0,max=6"`
	OpenTime  string    `json:"field_operating_hour_open_time" validate:"required"`
	CloseTime string    `json:"field_operating_hour_close_time" validate:"required"`
}

func (r CreateOperatingHourRequest) ToModel() (*m.FieldOperatingHourModel, error) {
	open, err := dbtime.Parse(r.OpenTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	cls, err := dbtime.Parse(r.CloseTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	if !open.BeforeTod(cls) {
		return nil, ErrOpenNotLtClose
	}
	return &m.FieldOperatingHourModel{
		FieldOperatingHourFieldID:   r.FieldID,
		FieldOperatingHourDayOfWeek: r.DayOfWeek,
		FieldOperatingHourOpenTime:  open,
		FieldOperatingHourCloseTime: cls,
	}, nil
}

type OperatingHourResponse struct {
	ID        uuid.UUID `json:"field_operating_hour_id"`
	FieldID   uuid.UUID `json:"field_operating_hour_field_id"`
	DayOfWeek int       `json:"field_operating_hour_day_of_week"`
	OpenTime  string    `json:"field_operating_hour_open_time"`
	CloseTime string    `json:"field_operating_hour_close_time"`
}

func FromOperatingHour(row *m.FieldOperatingHourModel) OperatingHourResponse {
	return OperatingHourResponse{
		ID:        row.FieldOperatingHourID,
		FieldID:   row.FieldOperatingHourFieldID,
		DayOfWeek: row.FieldOperatingHourDayOfWeek,
		OpenTime:  row.FieldOperatingHourOpenTime.String(),
		CloseTime: row.FieldOperatingHourCloseTime.String(),
	}
}

func FromOperatingHours(rows []m.FieldOperatingHourModel) []OperatingHourResponse {
	out := make([]OperatingHourResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromOperatingHour(&rows[i]))
	}
	return out
}

/* =========================================================
   2) Schedule exceptions
   ========================================================= */

type CreateScheduleExceptionRequest struct {
	FieldID          uuid.UUID `json:"field_schedule_exception_field_id" validate:"required"`
	Date             string    `json:"field_schedule_exception_date" validate:"required"`
	Reason           string    `json:"field_schedule_exception_reason" validate:"required,max=200"`
	OverridesRegular bool      `json:"field_schedule_exception_overrides_regular"`
	SpecialOpenTime  *string   `json:"field_schedule_exception_special_open_time"`
	SpecialCloseTime *string   `json:"field_schedule_exception_special_close_time"`
}

func (r CreateScheduleExceptionRequest) ToModel() (*m.FieldScheduleExceptionModel, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}

	if (r.SpecialOpenTime == nil) != (r.SpecialCloseTime == nil) {
		return nil, ErrSpecialHalfOpen
	}

	out := &m.FieldScheduleExceptionModel{
		FieldScheduleExceptionFieldID:          r.FieldID,
		FieldScheduleExceptionDate:             date,
		FieldScheduleExceptionReason:           r.Reason,
		FieldScheduleExceptionOverridesRegular: r.OverridesRegular,
	}

	if r.SpecialOpenTime != nil {
		open, err := dbtime.Parse(*r.SpecialOpenTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		cls, err := dbtime.Parse(*r.SpecialCloseTime)
		if err != nil {
			return nil, ErrInvalidTime
		}
		if !open.BeforeTod(cls) {
			return nil, ErrOpenNotLtClose
		}
		out.FieldScheduleExceptionSpecialOpenTime = &open
		out.FieldScheduleExceptionSpecialCloseTime = &cls
		// jam spesial otomatis menimpa jadwal mingguan
		out.FieldScheduleExceptionOverridesRegular = true
	}
	return out, nil
}

type ScheduleExceptionResponse struct {
	ID               uuid.UUID `json:"field_schedule_exception_id"`
	FieldID          uuid.UUID `json:"field_schedule_exception_field_id"`
	Date             string    `json:"field_schedule_exception_date"`
	Reason           string    `json:"field_schedule_exception_reason"`
	OverridesRegular bool      `json:"field_schedule_exception_overrides_regular"`
	SpecialOpenTime  *string   `json:"field_schedule_exception_special_open_time,omitempty"`
	SpecialCloseTime *string   `json:"field_schedule_exception_special_close_time,omitempty"`
}

func FromScheduleException(row *m.FieldScheduleExceptionModel) ScheduleExceptionResponse {
	out := ScheduleExceptionResponse{
		ID:               row.FieldScheduleExceptionID,
		FieldID:          row.FieldScheduleExceptionFieldID,
		Date:             time.Time(row.FieldScheduleExceptionDate).Format("2006-01-02"),
		Reason:           row.FieldScheduleExceptionReason,
		OverridesRegular: row.FieldScheduleExceptionOverridesRegular,
	}
	if row.FieldScheduleExceptionSpecialOpenTime != nil {
		s := row.FieldScheduleExceptionSpecialOpenTime.String()
		out.SpecialOpenTime = &s
	}
	if row.FieldScheduleExceptionSpecialCloseTime != nil {
		s := row.FieldScheduleExceptionSpecialCloseTime.String()
		out.SpecialCloseTime = &s
	}
	return out
}

func FromScheduleExceptions(rows []m.FieldScheduleExceptionModel) []ScheduleExceptionResponse {
	out := make([]ScheduleExceptionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromScheduleException(&rows[i]))
	}
	return out
}

/* =========================================================
   3) Holidays
   ========================================================= */

type CreateHolidayRequest struct {
	Date       string `json:"holiday_date" validate:"required"`
	Name       string `json:"holiday_name" validate:"required,max=160"`
	IsNational *bool  `json:"holiday_is_national"`
}

func (r CreateHolidayRequest) ToModel() (*m.HolidayModel, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}
	isNational := true
	if r.IsNational != nil {
		isNational = *r.IsNational
	}
	return &m.HolidayModel{
		HolidayDate:       date,
		HolidayName:       r.Name,
		HolidayIsNational: isNational,
	}, nil
}

type HolidayResponse struct {
	ID         uuid.UUID `json:"holiday_id"`
	Date       string    `json:"holiday_date"`
	Name       string    `json:"holiday_name"`
	IsNational bool      `json:"holiday_is_national"`
}

func FromHoliday(row *m.HolidayModel) HolidayResponse {
	return HolidayResponse{
		ID:         row.HolidayID,
		Date:       time.Time(row.HolidayDate).Format("2006-01-02"),
		Name:       row.HolidayName,
		IsNational: row.HolidayIsNational,
	}
}

func FromHolidays(rows []m.HolidayModel) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromHoliday(&rows[i]))
	}
	return out
}
