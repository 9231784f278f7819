// file: internals/seeds/operating_hours/seed_operating_hours.go
package operatinghours

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	fieldModel "hoopingweek_backend/internals/features/fields/fields/model"
	ohModel "hoopingweek_backend/internals/features/fields/operating_hours/model"
	"hoopingweek_backend/internals/helpers/dbtime"
)

// Jadwal di file mengacu ke field_name (UUID belum diketahui saat seed ditulis).
type OperatingHourSeed struct {
	FieldName string `json:"field_name"`
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

func SeedOperatingHoursFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []OperatingHourSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	inserted := 0
	for _, s := range seeds {
		var field fieldModel.FieldModel
		if err := db.First(&field, "field_name = ?", s.FieldName).Error; err != nil {
			log.Printf("⚠️ Field '%s' tidak ditemukan, jadwal dilewati.", s.FieldName)
			continue
		}

		var count int64
		if err := db.Model(&ohModel.FieldOperatingHourModel{}).
			Where("field_operating_hour_field_id = ? AND field_operating_hour_day_of_week = ?", field.FieldID, s.DayOfWeek).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ Gagal cek jadwal '%s' hari %d: %v", s.FieldName, s.DayOfWeek, err)
		}
		if count > 0 {
			continue
		}

		open, err := dbtime.Parse(s.OpenTime)
		if err != nil {
			log.Fatalf("❌ open_time tidak valid '%s': %v", s.OpenTime, err)
		}
		cls, err := dbtime.Parse(s.CloseTime)
		if err != nil {
			log.Fatalf("❌ close_time tidak valid '%s': %v", s.CloseTime, err)
		}

		row := ohModel.FieldOperatingHourModel{
			FieldOperatingHourFieldID:   field.FieldID,
			FieldOperatingHourDayOfWeek: s.DayOfWeek,
			FieldOperatingHourOpenTime:  open,
			FieldOperatingHourCloseTime: cls,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("❌ Gagal insert jadwal '%s' hari %d: %v", s.FieldName, s.DayOfWeek, err)
		}
		inserted++
	}

	log.Printf("✅ Seed operating hours selesai, %d jadwal baru", inserted)
}
