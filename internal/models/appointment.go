package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	KindInPerson = "in_person"
	KindRemote   = "remote"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	PatientID uuid.UUID `gorm:"type:uuid;index" json:"patient_id"`
	Patient   Patient   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	ScheduledAt time.Time `gorm:"index" json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`

	Kind   string   `gorm:"size:20;default:'in_person'" json:"kind"`
	Amount *float64 `json:"amount"`
	Notes  string   `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Paid   bool   `gorm:"default:false" json:"paid"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// EndsAt é o fim da sessão derivado da duração; não é persistido.
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.DurationMin) * time.Minute)
}
