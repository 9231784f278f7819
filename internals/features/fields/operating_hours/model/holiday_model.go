// file: internals/features/fields/operating_hours/model/holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HolidayModel: hari libur global (bukan per field). Semua lapangan tutup.
type HolidayModel struct {
	HolidayID uuid.UUID `gorm:"column:holiday_id;type:uuid;default:gen_random_uuid();primaryKey" json:"holiday_id"`

	HolidayDate       datatypes.Date `gorm:"column:holiday_date;type:date;not null;uniqueIndex" json:"holiday_date"`
	HolidayName       string         `gorm:"column:holiday_name;type:varchar(160);not null" json:"holiday_name"`
	HolidayIsNational bool           `gorm:"column:holiday_is_national;not null;default:true" json:"holiday_is_national"`

	HolidayCreatedAt time.Time `gorm:"column:holiday_created_at;type:timestamptz;not null;autoCreateTime" json:"holiday_created_at"`
}

func (HolidayModel) TableName() string { return "holidays" }
