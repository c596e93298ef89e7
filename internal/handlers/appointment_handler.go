package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/dto"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/httpresp"
	"github.com/neuropedapp/clinic-agenda/internal/middleware"
	"github.com/neuropedapp/clinic-agenda/internal/timezone"
	ucAppointment "github.com/neuropedapp/clinic-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	completeUC *ucAppointment.CompleteAppointment
	cancelUC   *ucAppointment.CancelAppointment
	deleteUC   *ucAppointment.DeleteAppointment
	upcomingUC *ucAppointment.ListUpcoming

	repo domain.Repository
	tz   string
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	upcomingUC *ucAppointment.ListUpcoming,
	repo domain.Repository,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		completeUC: completeUC,
		cancelUC:   cancelUC,
		deleteUC:   deleteUC,
		upcomingUC: upcomingUC,
		repo:       repo,
		tz:         tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID   string   `json:"patient_id" binding:"required"`
	ScheduledAt string   `json:"scheduled_at" binding:"required"`
	DurationMin int      `json:"duration_min" binding:"required"`
	Kind        string   `json:"kind" binding:"required"`
	Amount      *float64 `json:"amount"`
	Notes       string   `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID   *string  `json:"patient_id"`
	ScheduledAt *string  `json:"scheduled_at"`
	DurationMin *int     `json:"duration_min"`
	Kind        *string  `json:"kind"`
	Amount      *float64 `json:"amount"`
	Notes       *string  `json:"notes"`
	Paid        *bool    `json:"paid"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		httperr.BadRequest(c, "invalid_patient_id", "Paciente inválido.")
		return
	}

	scheduledAt, err := parseInstantIn(h.tz, req.ScheduledAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OwnerID:     ownerID,
		PatientID:   patientID,
		ScheduledAt: scheduledAt,
		DurationMin: req.DurationMin,
		Kind:        req.Kind,
		Amount:      req.Amount,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err, "failed_to_create_appointment", "Erro ao criar consulta.")
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

// List devolve todas as consultas do profissional, ou as do dia quando
// ?date=AAAA-MM-DD está presente. Sempre ascendente por horário.
func (h *AppointmentHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	loc := timezone.Location(h.tz)

	dateStr := c.Query("date")

	if dateStr == "" {
		aps, err := h.repo.ListAll(c.Request.Context(), ownerID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar consultas.")
			return
		}
		httpresp.List(c, dto.FromAppointments(aps, loc))
		return
	}

	date, err := parseDateIn(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.repo.ListForDay(c.Request.Context(), ownerID, date, loc)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar consultas.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps, loc))
}

// ======================================================
// UPCOMING
// ======================================================

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	now := timezone.NowIn(h.tz)
	out, err := h.upcomingUC.Execute(c.Request.Context(), ownerID, now, limit)
	if err != nil {
		respondError(c, err, "failed_to_list_upcoming", "Erro ao listar próximas consultas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.repo.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar consulta.")
		return
	}
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Consulta não encontrada.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		OwnerID:     ownerID,
		ID:          id,
		DurationMin: req.DurationMin,
		Kind:        req.Kind,
		Amount:      req.Amount,
		Notes:       req.Notes,
		Paid:        req.Paid,
	}

	if req.PatientID != nil {
		patientID, err := uuid.Parse(*req.PatientID)
		if err != nil {
			httperr.BadRequest(c, "invalid_patient_id", "Paciente inválido.")
			return
		}
		in.PatientID = &patientID
	}

	if req.ScheduledAt != nil {
		scheduledAt, err := parseInstantIn(h.tz, *req.ScheduledAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.ScheduledAt = &scheduledAt
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "failed_to_update_appointment", "Erro ao atualizar consulta.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// COMPLETE / CANCEL
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err, "failed_to_complete_appointment", "Erro ao concluir consulta.")
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err, "failed_to_cancel_appointment", "Erro ao cancelar consulta.")
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, err, "failed_to_delete_appointment", "Erro ao excluir consulta.")
		return
	}

	c.Status(204)
}
