package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/neuropedapp/clinic-agenda/internal/audit"
	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/models"
	"github.com/neuropedapp/clinic-agenda/internal/timezone"
)

type CompleteAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	if ownerID == uuid.Nil {
		return nil, httperr.ErrBusiness("not_authenticated")
	}

	ap, err := uc.repo.GetByID(ctx, ownerID, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.timezone)
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
