// file: internals/features/fields/operating_hours/scheduler/holiday_sync.go
package scheduler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hoopingweek_backend/internals/configs"
	ohModel "hoopingweek_backend/internals/features/fields/operating_hours/model"
)

const nagerBaseURL = "https://date.nager.at/api/v3/publicholidays"

// nagerHoliday: satu entri dari Nager.Date public holidays API.
type nagerHoliday struct {
	Date      string `json:"date"` // YYYY-MM-DD
	LocalName string `json:"localName"`
	Name      string `json:"name"`
	Global    bool   `json:"global"`
}

// StartHolidaySyncScheduler menjalankan sinkronisasi hari libur nasional
// setiap 24 jam (tahun berjalan + tahun depan). Insert idempoten: tanggal
// yang sudah ada dilewati, entri manual admin tidak pernah ditimpa.
func StartHolidaySyncScheduler(db *gorm.DB) {
	go func() {
		// jalan sekali saat boot, lalu tiap 24 jam
		runHolidaySync(db)
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			runHolidaySync(db)
		}
	}()
}

func runHolidaySync(db *gorm.DB) {
	country := configs.HolidayCountry
	if country == "" {
		country = "CO"
	}

	year := time.Now().Year()
	for _, y := range []int{year, year + 1} {
		n, err := syncHolidayYear(db, y, country)
		if err != nil {
			log.Printf("[HOLIDAY-SYNC] ❌ %d/%s: %v", y, country, err)
			continue
		}
		log.Printf("[HOLIDAY-SYNC] ✅ %d/%s: %d hari libur baru", y, country, n)
	}
}

// syncHolidayYear mengambil hari libur satu tahun dan meng-insert yang belum ada.
func syncHolidayYear(db *gorm.DB, year int, country string) (int, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	url := fmt.Sprintf("%s/%d/%s", nagerBaseURL, year, country)

	resp, err := client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	var entries []nagerHoliday
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	inserted := 0
	for _, e := range entries {
		day, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		name := e.LocalName
		if name == "" {
			name = e.Name
		}

		row := ohModel.HolidayModel{
			HolidayDate:       datatypes.Date(day),
			HolidayName:       name,
			HolidayIsNational: e.Global,
		}
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "holiday_date"}},
			DoNothing: true,
		}).Create(&row)
		if res.Error != nil {
			return inserted, res.Error
		}
		inserted += int(res.RowsAffected)
	}
	return inserted, nil
}
