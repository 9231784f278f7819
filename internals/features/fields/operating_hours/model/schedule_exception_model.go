// file: internals/features/fields/operating_hours/model/schedule_exception_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hoopingweek_backend/internals/helpers/dbtime"
)

// FieldScheduleExceptionModel: override per (field, tanggal).
// overrides_regular + jam spesial kosong = tutup penuh hari itu;
// jam spesial terisi = mengganti jam mingguan untuk tanggal itu.
type FieldScheduleExceptionModel struct {
	FieldScheduleExceptionID uuid.UUID `gorm:"column:field_schedule_exception_id;type:uuid;default:gen_random_uuid();primaryKey" json:"field_schedule_exception_id"`

	FieldScheduleExceptionFieldID uuid.UUID      `gorm:"column:field_schedule_exception_field_id;type:uuid;not null;uniqueIndex:uq_field_schedule_exceptions_field_date" json:"field_schedule_exception_field_id"`
	FieldScheduleExceptionDate    datatypes.Date `gorm:"column:field_schedule_exception_date;type:date;not null;uniqueIndex:uq_field_schedule_exceptions_field_date" json:"field_schedule_exception_date"`

	FieldScheduleExceptionReason           string      `gorm:"column:field_schedule_exception_reason;type:varchar(200);not null" json:"field_schedule_exception_reason"`
	FieldScheduleExceptionOverridesRegular bool        `gorm:"column:field_schedule_exception_overrides_regular;not null;default:false" json:"field_schedule_exception_overrides_regular"`
	FieldScheduleExceptionSpecialOpenTime  *dbtime.Tod `gorm:"column:field_schedule_exception_special_open_time;type:time" json:"field_schedule_exception_special_open_time,omitempty"`
	FieldScheduleExceptionSpecialCloseTime *dbtime.Tod `gorm:"column:field_schedule_exception_special_close_time;type:time" json:"field_schedule_exception_special_close_time,omitempty"`

	FieldScheduleExceptionCreatedAt time.Time `gorm:"column:field_schedule_exception_created_at;type:timestamptz;not null;autoCreateTime" json:"field_schedule_exception_created_at"`
}

func (FieldScheduleExceptionModel) TableName() string { return "field_schedule_exceptions" }

// HasSpecialHours: pengecualian dengan jam khusus (bukan tutup penuh).
func (m *FieldScheduleExceptionModel) HasSpecialHours() bool {
	return m.FieldScheduleExceptionSpecialOpenTime != nil && m.FieldScheduleExceptionSpecialCloseTime != nil
}
