// file: internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"hoopingweek_backend/internals/constants"
)

func ctxWithRole(t *testing.T, app *fiber.App, role string) *fiber.Ctx {
	t.Helper()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	t.Cleanup(func() { app.ReleaseCtx(c) })
	if role != "" {
		c.Locals("role", role)
	}
	return c
}

func TestIsManagerOrAdmin(t *testing.T) {
	app := fiber.New()

	cases := []struct {
		role string
		want bool
	}{
		{constants.RoleManager, true},
		{constants.RoleAdmin, true},
		{constants.RoleAthlete, false},
		{"", false},        // tanpa claim role
		{"trainer", false}, // role asing tidak dapat privilese
	}
	for _, tc := range cases {
		c := ctxWithRole(t, app, tc.role)
		if got := IsManagerOrAdmin(c); got != tc.want {
			t.Errorf("IsManagerOrAdmin(role=%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestGetRole(t *testing.T) {
	app := fiber.New()

	c := ctxWithRole(t, app, constants.RoleAthlete)
	if got := GetRole(c); got != constants.RoleAthlete {
		t.Errorf("GetRole = %q", got)
	}

	empty := ctxWithRole(t, app, "")
	if got := GetRole(empty); got != "" {
		t.Errorf("GetRole tanpa claim = %q, want kosong", got)
	}
}
