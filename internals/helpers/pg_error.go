// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError memetakan error Postgres (pgx/libpq) ke status + pesan.
// 23P01 = exclusion violation (backstop anti double-booking),
// 23503 = FK violation, 23505 = unique violation.
func MapPGError(err error) (int, string) {
	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23P01":
			return http.StatusConflict, "Reservation window overlaps an existing booking."
		case "23503":
			return http.StatusConflict, "Row is referenced by other records (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate entry (unique violation)."
		default:
			return http.StatusInternalServerError, pgxErr.Message
		}
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23P01":
			return http.StatusConflict, "Reservation window overlaps an existing booking."
		case "23503":
			return http.StatusConflict, "Row is referenced by other records (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate entry (unique violation)."
		default:
			return http.StatusInternalServerError, pqErr.Error()
		}
	}
	return http.StatusInternalServerError, err.Error()
}

// WritePGError: internal/storage error tidak pernah bocor verbatim kalau 500.
func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	if code >= 500 {
		log.Printf("[DB ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		return JsonError(c, code, "internal error")
	}
	return JsonError(c, code, msg)
}
