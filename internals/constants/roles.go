package constants

import "fmt"

const (
	RoleAthlete = "athlete"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Template pesan error role
const (
	ErrOnlyManagersCanAccess = "❌ Hanya manager atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles      = []string{RoleAthlete, RoleManager, RoleAdmin}
	ApproverRoles = []string{RoleManager, RoleAdmin}
)
