// file: internals/features/fields/operating_hours/model/operating_hour_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"hoopingweek_backend/internals/helpers/dbtime"
)

// FieldOperatingHourModel: jam buka mingguan per (field, day_of_week).
// day_of_week: 0=Minggu .. 6=Sabtu. Maksimal satu baris per pasangan.
type FieldOperatingHourModel struct {
	FieldOperatingHourID uuid.UUID `gorm:"column:field_operating_hour_id;type:uuid;default:gen_random_uuid();primaryKey" json:"field_operating_hour_id"`

	FieldOperatingHourFieldID   uuid.UUID `gorm:"column:field_operating_hour_field_id;type:uuid;not null;uniqueIndex:uq_field_operating_hours_field_day" json:"field_operating_hour_field_id"`
	FieldOperatingHourDayOfWeek int       `gorm:"column:field_operating_hour_day_of_week;not null;uniqueIndex:uq_field_operating_hours_field_day" json:"field_operating_hour_day_of_week"`

	FieldOperatingHourOpenTime  dbtime.Tod `gorm:"column:field_operating_hour_open_time;type:time;not null" json:"field_operating_hour_open_time"`
	FieldOperatingHourCloseTime dbtime.Tod `gorm:"column:field_operating_hour_close_time;type:time;not null" json:"field_operating_hour_close_time"`

	FieldOperatingHourCreatedAt time.Time `gorm:"column:field_operating_hour_created_at;type:timestamptz;not null;autoCreateTime" json:"field_operating_hour_created_at"`
	FieldOperatingHourUpdatedAt time.Time `gorm:"column:field_operating_hour_updated_at;type:timestamptz;not null;autoUpdateTime" json:"field_operating_hour_updated_at"`
}

func (FieldOperatingHourModel) TableName() string { return "field_operating_hours" }
