// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hoopingweek_backend/internals/constants"
	"hoopingweek_backend/internals/middlewares"
	authMiddleware "hoopingweek_backend/internals/middlewares/auth"
	routeDetails "hoopingweek_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.ReservationPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group (JWT)...")
	private := app.Group("/api/u",
		middlewares.DBMiddleware(db),
		authMiddleware.AuthMiddleware(),
	)
	routeDetails.ReservationUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT + role)...")
	admin := app.Group("/api/a",
		middlewares.DBMiddleware(db),
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.ApproverRoles...),
	)
	routeDetails.ReservationAdminRoutes(admin, db)

	// Uptime sederhana
	app.Get("/api/public/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})
}
