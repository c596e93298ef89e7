package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	infraRepo "github.com/neuropedapp/clinic-agenda/internal/infra/repository"
	"github.com/neuropedapp/clinic-agenda/internal/middleware"
	"github.com/neuropedapp/clinic-agenda/internal/models"
	"github.com/neuropedapp/clinic-agenda/internal/timezone"
	ucAppointment "github.com/neuropedapp/clinic-agenda/internal/usecase/appointment"
)

type DashboardHandler struct {
	patients     *infraRepo.PatientGormRepository
	appointments domain.Repository
	upcomingUC   *ucAppointment.ListUpcoming
	tz           string
}

func NewDashboardHandler(
	patients *infraRepo.PatientGormRepository,
	appointments domain.Repository,
	upcomingUC *ucAppointment.ListUpcoming,
	tz string,
) *DashboardHandler {
	return &DashboardHandler{
		patients:     patients,
		appointments: appointments,
		upcomingUC:   upcomingUC,
		tz:           tz,
	}
}

// Summary alimenta os cartões do painel: pacientes ativos, consultas de
// hoje e as próximas cinco agendadas.
func (h *DashboardHandler) Summary(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	ctx := c.Request.Context()

	active, err := h.patients.CountByStatus(ctx, ownerID, models.PatientActive)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar painel.")
		return
	}

	total, err := h.patients.CountAll(ctx, ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar painel.")
		return
	}

	now := timezone.NowIn(h.tz)
	loc := timezone.Location(h.tz)

	today, err := h.appointments.ListForDay(ctx, ownerID, now, loc)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar painel.")
		return
	}

	upcoming, err := h.upcomingUC.Execute(ctx, ownerID, now, ucAppointment.DefaultUpcomingLimit)
	if err != nil {
		respondError(c, err, "failed_to_load_dashboard", "Erro ao carregar painel.")
		return
	}

	c.JSON(200, gin.H{
		"active_patients": active,
		"total_patients":  total,
		"today_count":     len(today),
		"upcoming":        upcoming,
	})
}
