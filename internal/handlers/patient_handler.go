package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neuropedapp/clinic-agenda/internal/audit"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/httpresp"
	infraRepo "github.com/neuropedapp/clinic-agenda/internal/infra/repository"
	"github.com/neuropedapp/clinic-agenda/internal/middleware"
	"github.com/neuropedapp/clinic-agenda/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	repo  *infraRepo.PatientGormRepository
	audit *audit.Dispatcher
	tz    string
}

func NewPatientHandler(
	repo *infraRepo.PatientGormRepository,
	audit *audit.Dispatcher,
	tz string,
) *PatientHandler {
	return &PatientHandler{repo: repo, audit: audit, tz: tz}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	BirthDate string `json:"birth_date"`
	Notes     string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	BirthDate *string `json:"birth_date"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes     *string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	activeOnly := c.Query("status") == models.PatientActive

	patients, err := h.repo.List(c.Request.Context(), ownerID, c.Query("query"), activeOnly)
	if err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Erro ao listar pacientes.")
		return
	}

	httpresp.List(c, patients)
}

// ======================================================
// GET
// ======================================================

func (h *PatientHandler) Get(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_patient", "Erro ao buscar paciente.")
		return
	}
	if p == nil {
		httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
		return
	}

	c.JSON(200, gin.H{
		"patient": p,
		"age":     p.Age(time.Now()),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p := models.Patient{
		UserID: ownerID,
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Status: models.PatientActive,
		Notes:  req.Notes,
	}

	if req.BirthDate != "" {
		birth, err := parseDateIn(h.tz, req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		p.BirthDate = &birth
	}

	if err := h.repo.Create(c.Request.Context(), &p); err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Erro ao cadastrar paciente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: &p.ID,
	})

	c.JSON(201, p)
}

// ======================================================
// UPDATE
// ======================================================

func (h *PatientHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_patient", "Erro ao buscar paciente.")
		return
	}
	if p == nil {
		httperr.NotFound(c, "patient_not_found", "Paciente não encontrado.")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.BirthDate != nil {
		birth, err := parseDateIn(h.tz, *req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		p.BirthDate = &birth
	}

	if err := h.repo.Save(c.Request.Context(), p); err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Erro ao atualizar paciente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "patient_updated",
		Entity:   "patient",
		EntityID: &p.ID,
	})

	c.JSON(200, p)
}
