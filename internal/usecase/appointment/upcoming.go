package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/dto"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/timezone"
)

const DefaultUpcomingLimit = 5

type ListUpcoming struct {
	repo     domain.Repository
	timezone string
}

func NewListUpcoming(repo domain.Repository, tz string) *ListUpcoming {
	return &ListUpcoming{repo: repo, timezone: tz}
}

// Execute lista as próximas consultas ainda agendadas, ascendente por
// horário, limitada a limit (ou ao padrão quando limit <= 0).
func (uc *ListUpcoming) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	now time.Time,
	limit int,
) ([]dto.AppointmentListDTO, error) {

	if ownerID == uuid.Nil {
		return nil, httperr.ErrBusiness("not_authenticated")
	}

	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	aps, err := uc.repo.ListUpcoming(ctx, ownerID, now, limit)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(aps, timezone.Location(uc.timezone)), nil
}
