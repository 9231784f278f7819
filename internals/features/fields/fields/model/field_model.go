// file: internals/features/fields/fields/model/field_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldModel: katalog lapangan (CRUD-nya di modul fasilitas; core hanya baca).
type FieldModel struct {
	FieldID       uuid.UUID `gorm:"column:field_id;type:uuid;default:gen_random_uuid();primaryKey" json:"field_id"`
	FieldName     string    `gorm:"column:field_name;type:varchar(120);not null" json:"field_name"`
	FieldType     string    `gorm:"column:field_type;type:varchar(40);not null;default:'basketball'" json:"field_type"`
	FieldLocation *string   `gorm:"column:field_location;type:varchar(200)" json:"field_location,omitempty"`
	FieldIsActive bool      `gorm:"column:field_is_active;not null;default:true" json:"field_is_active"`

	FieldCreatedAt time.Time      `gorm:"column:field_created_at;type:timestamptz;not null;autoCreateTime" json:"field_created_at"`
	FieldUpdatedAt time.Time      `gorm:"column:field_updated_at;type:timestamptz;not null;autoUpdateTime" json:"field_updated_at"`
	FieldDeletedAt gorm.DeletedAt `gorm:"column:field_deleted_at;index" json:"field_deleted_at,omitempty"`
}

func (FieldModel) TableName() string { return "fields" }
