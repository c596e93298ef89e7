package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/neuropedapp/clinic-agenda/internal/audit"
	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/models"
	"github.com/neuropedapp/clinic-agenda/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	OwnerID uuid.UUID

	PatientID   uuid.UUID `validate:"required"`
	ScheduledAt time.Time `validate:"required"`
	DurationMin int       `validate:"required,min=15,max=240"`
	Kind        string    `validate:"required,oneof=in_person remote"`
	Amount      *float64  `validate:"omitempty,gte=0"`
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// Sem profissional autenticado nada chega ao banco.
	if in.OwnerID == uuid.Nil {
		return nil, httperr.ErrBusiness("not_authenticated")
	}

	if err := validators.Validate.Struct(in); err != nil {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	patient, err := uc.repo.GetPatient(ctx, in.OwnerID, in.PatientID)
	if err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	ap := &models.Appointment{
		UserID:      in.OwnerID,
		PatientID:   patient.ID,
		ScheduledAt: in.ScheduledAt,
		DurationMin: in.DurationMin,
		Kind:        in.Kind,
		Amount:      in.Amount,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
		Paid:        false,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
