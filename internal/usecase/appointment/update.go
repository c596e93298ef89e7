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

type UpdateAppointmentInput struct {
	OwnerID uuid.UUID
	ID      uuid.UUID

	PatientID   *uuid.UUID
	ScheduledAt *time.Time
	DurationMin *int     `validate:"omitempty,min=15,max=240"`
	Kind        *string  `validate:"omitempty,oneof=in_person remote"`
	Amount      *float64 `validate:"omitempty,gte=0"`
	Notes       *string
	Paid        *bool
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if in.OwnerID == uuid.Nil {
		return nil, httperr.ErrBusiness("not_authenticated")
	}

	if err := validators.Validate.Struct(in); err != nil {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	if in.PatientID != nil {
		if _, err := uc.repo.GetPatient(ctx, in.OwnerID, *in.PatientID); err != nil {
			return nil, httperr.ErrBusiness("patient_not_found")
		}
	}

	ap, err := uc.repo.Update(ctx, in.OwnerID, in.ID, domain.UpdateFields{
		PatientID:   in.PatientID,
		ScheduledAt: in.ScheduledAt,
		DurationMin: in.DurationMin,
		Kind:        in.Kind,
		Amount:      in.Amount,
		Notes:       in.Notes,
		Paid:        in.Paid,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
