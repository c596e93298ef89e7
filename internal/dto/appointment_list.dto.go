package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/models"
)

type AppointmentListDTO struct {
	ID          uuid.UUID `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Time        string    `json:"time"`
	Window      string    `json:"window"`
	DurationMin int       `json:"duration_min"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	StatusBadge string    `json:"status_badge"`
	Paid        bool      `json:"paid"`

	PatientID    uuid.UUID `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	PatientPhone string    `json:"patient_phone"`
}

func FromAppointment(ap models.Appointment, loc *time.Location) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		ScheduledAt: ap.ScheduledAt,
		Time:        domain.FormatTime(ap.ScheduledAt, loc),
		Window:      domain.SessionWindow(ap.ScheduledAt, ap.DurationMin, loc),
		DurationMin: ap.DurationMin,
		Kind:        ap.Kind,
		Status:      ap.Status,
		StatusBadge: domain.StatusBadgeClass(domain.Status(ap.Status)),
		Paid:        ap.Paid,

		PatientID:    ap.PatientID,
		PatientName:  ap.Patient.Name,
		PatientPhone: ap.Patient.Phone,
	}
}

func FromAppointments(aps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap, loc))
	}
	return out
}
