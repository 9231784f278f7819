// file: internals/features/reservations/reservations/service/overlap_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	fieldModel "hoopingweek_backend/internals/features/fields/fields/model"
	resvModel "hoopingweek_backend/internals/features/reservations/reservations/model"
	"hoopingweek_backend/internals/helpers/apperror"
)

type OverlapService struct {
	DB *gorm.DB
}

func NewOverlapService(db *gorm.DB) *OverlapService {
	return &OverlapService{DB: db}
}

// FindConflicts mengembalikan SEMUA reservasi busy-blocking yang bentrok dengan
// [start, end) pada lapangan yang sama. Predikat half-open: bentrok iff
// NOT (existing.end <= start OR existing.start >= end) — sentuhan batas bukan
// bentrok. excludeID mengeluarkan satu reservasi dari kandidat (validasi update).
func (s *OverlapService) FindConflicts(
	ctx context.Context,
	fieldID uuid.UUID,
	start, end time.Time,
	excludeID *uuid.UUID,
) ([]resvModel.ReservationModel, error) {
	if !start.Before(end) {
		return nil, apperror.InvalidArgument("start_datetime must be before end_datetime")
	}

	var field fieldModel.FieldModel
	if err := s.DB.WithContext(ctx).First(&field, "field_id = ?", fieldID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("field not found")
		}
		return nil, err
	}

	return findConflictsTx(s.DB.WithContext(ctx), fieldID, start, end, excludeID)
}

// findConflictsTx: query overlap murni, dipakai juga di dalam transaksi create/
// update agar pengecekan terjadi di bawah lock yang sama.
func findConflictsTx(
	tx *gorm.DB,
	fieldID uuid.UUID,
	start, end time.Time,
	excludeID *uuid.UUID,
) ([]resvModel.ReservationModel, error) {
	q := tx.
		Where("reservation_field_id = ?", fieldID).
		Where("reservation_status IN ?", resvModel.BusyBlockingStatuses).
		Where("reservation_start_at < ? AND reservation_end_at > ?", end, start)
	if excludeID != nil {
		q = q.Where("reservation_id <> ?", *excludeID)
	}

	var conflicts []resvModel.ReservationModel
	if err := q.Order("reservation_start_at ASC").Find(&conflicts).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}
