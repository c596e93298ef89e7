package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/neuropedapp/clinic-agenda/internal/audit"
	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove a consulta em definitivo. Não há soft-delete nem
// versionamento; a exclusão é irreversível.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	appointmentID uuid.UUID,
) error {

	if ownerID == uuid.Nil {
		return httperr.ErrBusiness("not_authenticated")
	}

	if err := uc.repo.Delete(ctx, ownerID, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
