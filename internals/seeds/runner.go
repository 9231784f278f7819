// file: internals/seeds/runner.go
package seeds

import (
	fields "hoopingweek_backend/internals/seeds/fields"
	operatinghours "hoopingweek_backend/internals/seeds/operating_hours"
	users "hoopingweek_backend/internals/seeds/users"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Users (password di-hash bcrypt saat insert)
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Fields
	fields.SeedFieldsFromJSON(db, "internals/seeds/fields/data_fields.json")

	//* Weekly operating hours (butuh fields sudah ada)
	operatinghours.SeedOperatingHoursFromJSON(db, "internals/seeds/operating_hours/data_operating_hours.json")
}
