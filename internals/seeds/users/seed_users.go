// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hoopingweek_backend/internals/features/users/user/model"
)

type UserSeed struct {
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_password"` // plaintext di file, di-hash saat insert
	UserRole     string `json:"user_role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []UserSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	inserted := 0
	for _, s := range seeds {
		var count int64
		if err := db.Model(&model.UserModel{}).
			Where("user_email = ?", s.UserEmail).
			Count(&count).Error; err != nil {
			log.Fatalf("❌ Gagal cek user '%s': %v", s.UserEmail, err)
		}
		if count > 0 {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", s.UserEmail)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(s.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Gagal hash password '%s': %v", s.UserEmail, err)
		}

		row := model.UserModel{
			UserName:     s.UserName,
			UserEmail:    s.UserEmail,
			UserPassword: string(hashed),
			UserRole:     s.UserRole,
			UserIsActive: true,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("❌ Gagal insert user '%s': %v", s.UserEmail, err)
		}
		inserted++
	}

	log.Printf("✅ Seed users selesai, %d user baru", inserted)
}
