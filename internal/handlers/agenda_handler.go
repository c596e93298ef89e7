package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neuropedapp/clinic-agenda/internal/agenda"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/middleware"
	"github.com/neuropedapp/clinic-agenda/internal/timezone"
)

type AgendaHandler struct {
	loader *agenda.Loader
	tz     string
}

func NewAgendaHandler(loader *agenda.Loader, tz string) *AgendaHandler {
	return &AgendaHandler{loader: loader, tz: tz}
}

// Show monta a visão da agenda: ?view=day|week|month e ?date=AAAA-MM-DD
// (hoje quando ausente). A visão mensal responde available=false.
func (h *AgendaHandler) Show(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	mode, ok := agenda.ParseViewMode(c.DefaultQuery("view", string(agenda.ViewWeek)))
	if !ok {
		httperr.BadRequest(c, "invalid_view", "Visão inválida.")
		return
	}

	reference := timezone.NowIn(h.tz)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDateIn(h.tz, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		reference = parsed
	}

	view, err := h.loader.Load(c.Request.Context(), ownerID, reference, mode)
	if err != nil {
		httperr.Internal(c, "failed_to_load_agenda", "Erro ao carregar agenda.")
		return
	}

	c.JSON(200, view)
}
