// file: internals/features/reservations/reservations/service/reservation_service.go
package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hoopingweek_backend/internals/constants"
	"hoopingweek_backend/internals/events"
	fieldModel "hoopingweek_backend/internals/features/fields/fields/model"
	resvModel "hoopingweek_backend/internals/features/reservations/reservations/model"
	userModel "hoopingweek_backend/internals/features/users/user/model"
	"hoopingweek_backend/internals/helpers/apperror"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

/* =========================
   Create
   ========================= */

type CreateInput struct {
	FieldID      uuid.UUID
	ApplicantID  uuid.UUID
	ActivityType string
	StartAt      time.Time
	EndAt        time.Time
	Priority     int
	Notes        *string
}

// Create memasukkan reservasi pending baru. Cek-overlap + insert berjalan dalam
// SATU transaksi dengan lock FOR UPDATE pada baris field, sehingga dua request
// paralel untuk lapangan yang sama diserialisasi — persis satu yang menang.
// Exclusion constraint di Postgres (23P01) jadi backstop terakhir.
func (s *ReservationService) Create(ctx context.Context, in CreateInput) (*resvModel.ReservationModel, []resvModel.ReservationModel, error) {
	if !in.StartAt.Before(in.EndAt) {
		return nil, nil, apperror.InvalidArgument("start_datetime must be before end_datetime")
	}
	if strings.TrimSpace(in.ActivityType) == "" {
		return nil, nil, apperror.InvalidArgument("activity_type is required")
	}

	var applicant userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&applicant, "user_id = ?", in.ApplicantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperror.NotFound("applicant not found")
		}
		return nil, nil, err
	}

	var created resvModel.ReservationModel
	var conflicts []resvModel.ReservationModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialisasi per lapangan: semua create/update jadwal lapangan ini
		// antre di lock baris field.
		var field fieldModel.FieldModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&field, "field_id = ?", in.FieldID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("field not found")
			}
			return err
		}
		if !field.FieldIsActive {
			return apperror.Conflict("field is not active")
		}

		found, err := findConflictsTx(tx, in.FieldID, in.StartAt, in.EndAt, nil)
		if err != nil {
			return err
		}
		if len(found) > 0 {
			conflicts = found
			return apperror.Conflict("reservation window overlaps an existing booking")
		}

		created = resvModel.ReservationModel{
			ReservationFieldID:       in.FieldID,
			ReservationApplicantID:   in.ApplicantID,
			ReservationActivityType:  strings.TrimSpace(in.ActivityType),
			ReservationStartAt:       in.StartAt.UTC(),
			ReservationEndAt:         in.EndAt.UTC(),
			ReservationDurationHours: durationHours(in.StartAt, in.EndAt),
			ReservationStatus:        resvModel.StatusPending,
			ReservationPriority:      in.Priority,
			ReservationNotes:         in.Notes,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, conflicts, err
	}

	events.Publish(events.KeyReservationCreated, reservationEvent(events.KeyReservationCreated, &created))
	return &created, nil, nil
}

/* =========================
   Update (jadwal & atribut)
   ========================= */

type UpdateInput struct {
	ActivityType *string
	StartAt      *time.Time
	EndAt        *time.Time
	Priority     *int
	Notes        *string
}

// Update mengubah atribut reservasi. Kalau jendela waktu ikut berubah, deteksi
// overlap dijalankan ulang (exclude diri sendiri) di dalam transaksi yang sama;
// bentrok berarti tidak ada perubahan yang diterapkan sama sekali.
func (s *ReservationService) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*resvModel.ReservationModel, []resvModel.ReservationModel, error) {
	var updated resvModel.ReservationModel
	var conflicts []resvModel.ReservationModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r resvModel.ReservationModel
		if err := tx.First(&r, "reservation_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("reservation not found")
			}
			return err
		}
		if r.ReservationStatus.Terminal() {
			return apperror.InvalidTransition("reservation is in a terminal status")
		}

		start := r.ReservationStartAt
		end := r.ReservationEndAt
		windowChanged := false
		if in.StartAt != nil {
			start = in.StartAt.UTC()
			windowChanged = true
		}
		if in.EndAt != nil {
			end = in.EndAt.UTC()
			windowChanged = true
		}
		if !start.Before(end) {
			return apperror.InvalidArgument("start_datetime must be before end_datetime")
		}

		if windowChanged {
			var field fieldModel.FieldModel
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&field, "field_id = ?", r.ReservationFieldID).Error; err != nil {
				return err
			}
			rid := r.ReservationID
			found, err := findConflictsTx(tx, r.ReservationFieldID, start, end, &rid)
			if err != nil {
				return err
			}
			if len(found) > 0 {
				conflicts = found
				return apperror.Conflict("new window overlaps an existing booking")
			}
			r.ReservationStartAt = start
			r.ReservationEndAt = end
			r.ReservationDurationHours = durationHours(start, end)
		}

		if in.ActivityType != nil {
			if strings.TrimSpace(*in.ActivityType) == "" {
				return apperror.InvalidArgument("activity_type cannot be empty")
			}
			r.ReservationActivityType = strings.TrimSpace(*in.ActivityType)
		}
		if in.Priority != nil {
			r.ReservationPriority = *in.Priority
		}
		if in.Notes != nil {
			r.ReservationNotes = in.Notes
		}

		if err := tx.Save(&r).Error; err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, conflicts, err
	}
	return &updated, nil, nil
}

/* =========================
   Status lifecycle
   ========================= */

// ChangeStatus menerapkan state machine §lifecycle ke reservasi tersimpan.
// Untuk approve, actor harus user aktif ber-role manager/admin.
func (s *ReservationService) ChangeStatus(
	ctx context.Context,
	id uuid.UUID,
	to resvModel.ReservationStatus,
	actorID uuid.UUID,
	reason string,
) (*resvModel.ReservationModel, error) {
	if to == resvModel.StatusApproved {
		if err := s.ensureApprover(ctx, actorID); err != nil {
			return nil, err
		}
	}

	var out resvModel.ReservationModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r resvModel.ReservationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&r, "reservation_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("reservation not found")
			}
			return err
		}

		if err := ApplyTransition(&r, to, TransitionInput{ActorID: actorID, Reason: reason}); err != nil {
			return err
		}

		if err := tx.Save(&r).Error; err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if key := eventKeyForStatus(to); key != "" {
		events.Publish(key, reservationEvent(key, &out))
	}
	return &out, nil
}

func (s *ReservationService) ensureApprover(ctx context.Context, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return apperror.InvalidArgument("approved_by is required to approve")
	}
	var actor userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&actor, "user_id = ?", actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("approver not found")
		}
		return err
	}
	if !actor.UserIsActive {
		return apperror.Conflict("approver account is inactive")
	}
	if actor.UserRole != constants.RoleManager && actor.UserRole != constants.RoleAdmin {
		return apperror.InvalidArgument("approver must be a manager or admin")
	}
	return nil
}

/* =========================
   Delete (soft / hard)
   ========================= */

// Delete: force=false → soft delete (keluar dari busy-blocking set, histori
// tetap); force=true → hapus fisik peserta lalu reservasi. FK tersisa muncul
// sebagai Conflict, tidak pernah cascade diam-diam.
func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID, force bool) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r resvModel.ReservationModel
		q := tx
		if force {
			q = tx.Unscoped()
		}
		if err := q.First(&r, "reservation_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("reservation not found")
			}
			return err
		}

		if !force {
			return tx.Delete(&r).Error
		}

		if err := tx.Where("reservation_participant_reservation_id = ?", id).
			Delete(&resvModel.ReservationParticipantModel{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&r).Error
	})
}

/* =========================
   Read side
   ========================= */

type ListFilter struct {
	FieldID     *uuid.UUID
	ApplicantID *uuid.UUID
	Status      *resvModel.ReservationStatus
	DateFrom    *time.Time
	DateTo      *time.Time
	Limit       int
	Offset      int
}

func (s *ReservationService) List(ctx context.Context, f ListFilter) ([]resvModel.ReservationModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&resvModel.ReservationModel{})
	if f.FieldID != nil {
		q = q.Where("reservation_field_id = ?", *f.FieldID)
	}
	if f.ApplicantID != nil {
		q = q.Where("reservation_applicant_id = ?", *f.ApplicantID)
	}
	if f.Status != nil {
		q = q.Where("reservation_status = ?", *f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("reservation_start_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("reservation_end_at <= ?", *f.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []resvModel.ReservationModel
	if err := q.Order("reservation_start_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (*resvModel.ReservationModel, error) {
	var r resvModel.ReservationModel
	if err := s.DB.WithContext(ctx).First(&r, "reservation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reservation not found")
		}
		return nil, err
	}
	return &r, nil
}

/* =========================
   Participants
   ========================= */

func (s *ReservationService) ListParticipants(ctx context.Context, reservationID uuid.UUID) ([]resvModel.ReservationParticipantModel, error) {
	if _, err := s.GetByID(ctx, reservationID); err != nil {
		return nil, err
	}
	var rows []resvModel.ReservationParticipantModel
	if err := s.DB.WithContext(ctx).
		Where("reservation_participant_reservation_id = ?", reservationID).
		Order("reservation_participant_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReservationService) AddParticipant(
	ctx context.Context,
	reservationID, userID uuid.UUID,
	participantType string,
	teamID *uuid.UUID,
) (*resvModel.ReservationParticipantModel, error) {
	if participantType == "" {
		participantType = resvModel.ParticipantTypeIndividual
	}
	if participantType != resvModel.ParticipantTypeIndividual && participantType != resvModel.ParticipantTypeTeamMember {
		return nil, apperror.InvalidArgument("participant_type must be individual or team_member")
	}

	if _, err := s.GetByID(ctx, reservationID); err != nil {
		return nil, err
	}

	var participant userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&participant, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("participant not found")
		}
		return nil, err
	}
	if participant.UserRole != constants.RoleAthlete {
		return nil, apperror.InvalidArgument("participant must be an athlete")
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&resvModel.ReservationParticipantModel{}).
		Where("reservation_participant_reservation_id = ? AND reservation_participant_user_id = ?", reservationID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.Conflict("participant already on this reservation")
	}

	row := resvModel.ReservationParticipantModel{
		ReservationParticipantReservationID: reservationID,
		ReservationParticipantUserID:        userID,
		ReservationParticipantType:          participantType,
		ReservationParticipantTeamID:        teamID,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ReservationService) RemoveParticipant(ctx context.Context, reservationID, userID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("reservation_participant_reservation_id = ? AND reservation_participant_user_id = ?", reservationID, userID).
		Delete(&resvModel.ReservationParticipantModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("participant not on this reservation")
	}
	return nil
}

/* =========================
   Helpers
   ========================= */

// durationHours: (end-start)/3600, dibulatkan 2 desimal (kolom derived).
func durationHours(start, end time.Time) float64 {
	return math.Round(end.Sub(start).Hours()*100) / 100
}

func eventKeyForStatus(s resvModel.ReservationStatus) string {
	switch s {
	case resvModel.StatusApproved:
		return events.KeyReservationApproved
	case resvModel.StatusRejected:
		return events.KeyReservationRejected
	case resvModel.StatusCancelled:
		return events.KeyReservationCancelled
	case resvModel.StatusCompleted:
		return events.KeyReservationCompleted
	}
	return ""
}

func reservationEvent(key string, r *resvModel.ReservationModel) events.ReservationEvent {
	return events.ReservationEvent{
		Type:          key,
		ReservationID: r.ReservationID,
		FieldID:       r.ReservationFieldID,
		ApplicantID:   r.ReservationApplicantID,
		Status:        string(r.ReservationStatus),
		StartAt:       r.ReservationStartAt,
		EndAt:         r.ReservationEndAt,
		OccurredAt:    time.Now().UTC(),
	}
}
