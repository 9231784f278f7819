package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hoopingweek_backend/internals/configs"
	fieldModel "hoopingweek_backend/internals/features/fields/fields/model"
	ohModel "hoopingweek_backend/internals/features/fields/operating_hours/model"
	resvModel "hoopingweek_backend/internals/features/reservations/reservations/model"
	userModel "hoopingweek_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hoopingweek&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate menjalankan AutoMigrate untuk semua tabel inti, lalu memasang DDL
// yang tidak bisa diekspresikan lewat struct tag (exclusion constraint).
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&fieldModel.FieldModel{},
		&ohModel.FieldOperatingHourModel{},
		&ohModel.FieldScheduleExceptionModel{},
		&ohModel.HolidayModel{},
		&resvModel.ReservationModel{},
		&resvModel.ReservationParticipantModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	if err := EnsureReservationConstraints(DB); err != nil {
		log.Fatalf("❌ Constraint anti-overlap gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

// EnsureReservationConstraints memasang exclusion constraint anti double-booking
// di tabel reservations: backstop 23P01 di bawah row lock FOR UPDATE pada create/
// update. Idempoten, aman dipanggil setiap boot.
func EnsureReservationConstraints(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	return db.Exec(ReservationNoOverlapDDL()).Error
}

// ReservationNoOverlapDDL: dua reservasi busy-blocking (belum soft-delete) tidak
// boleh punya tstzrange yang beririsan pada lapangan yang sama. Half-open range
// berarti sentuhan batas tidak melanggar. Daftar status mengikuti
// BusyBlockingStatuses supaya DDL dan query overlap tidak bisa drift.
func ReservationNoOverlapDDL() string {
	statuses := make([]string, 0, len(resvModel.BusyBlockingStatuses))
	for _, s := range resvModel.BusyBlockingStatuses {
		statuses = append(statuses, "'"+string(s)+"'")
	}
	return fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'uq_reservations_no_overlap'
	) THEN
		ALTER TABLE reservations
			ADD CONSTRAINT uq_reservations_no_overlap
			EXCLUDE USING gist (
				reservation_field_id WITH =,
				tstzrange(reservation_start_at, reservation_end_at) WITH &&
			)
			WHERE (reservation_status IN (%s) AND reservation_deleted_at IS NULL);
	END IF;
END$$;`, strings.Join(statuses, ", "))
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
