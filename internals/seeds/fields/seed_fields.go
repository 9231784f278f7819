// file: internals/seeds/fields/seed_fields.go
package fields

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"hoopingweek_backend/internals/features/fields/fields/model"
)

type FieldSeed struct {
	FieldName     string  `json:"field_name"`
	FieldType     string  `json:"field_type"`
	FieldLocation *string `json:"field_location"`
}

func SeedFieldsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []FieldSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	inserted := 0
	for _, s := range seeds {
		var count int64
		if err := db.Model(&model.FieldModel{}).
			Where("field_name = ?", s.FieldName).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ Gagal cek field '%s': %v", s.FieldName, err)
		}
		if count > 0 {
			log.Printf("ℹ️ Field '%s' sudah ada, dilewati.", s.FieldName)
			continue
		}

		row := model.FieldModel{
			FieldName:     s.FieldName,
			FieldType:     s.FieldType,
			FieldLocation: s.FieldLocation,
			FieldIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("❌ Gagal insert field '%s': %v", s.FieldName, err)
		}
		inserted++
	}

	log.Printf("✅ Seed fields selesai, %d lapangan baru", inserted)
}
