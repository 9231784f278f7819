// file: internals/features/reservations/reservations/model/participant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ParticipantTypeIndividual = "individual"
	ParticipantTypeTeamMember = "team_member"
)

// ReservationParticipantModel: peserta tambahan pada sebuah reservasi.
// Tidak mempengaruhi perhitungan availability.
type ReservationParticipantModel struct {
	ReservationParticipantID uuid.UUID `gorm:"column:reservation_participant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reservation_participant_id"`

	ReservationParticipantReservationID uuid.UUID `gorm:"column:reservation_participant_reservation_id;type:uuid;not null;uniqueIndex:uq_reservation_participants_pair" json:"reservation_participant_reservation_id"`
	ReservationParticipantUserID        uuid.UUID `gorm:"column:reservation_participant_user_id;type:uuid;not null;uniqueIndex:uq_reservation_participants_pair" json:"reservation_participant_user_id"`

	ReservationParticipantType   string     `gorm:"column:reservation_participant_type;type:varchar(20);not null;default:'individual'" json:"reservation_participant_type"`
	ReservationParticipantTeamID *uuid.UUID `gorm:"column:reservation_participant_team_id;type:uuid" json:"reservation_participant_team_id,omitempty"`

	ReservationParticipantCreatedAt time.Time `gorm:"column:reservation_participant_created_at;type:timestamptz;not null;autoCreateTime" json:"reservation_participant_created_at"`
}

func (ReservationParticipantModel) TableName() string { return "reservation_participants" }
