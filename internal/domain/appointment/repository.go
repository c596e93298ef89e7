package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/neuropedapp/clinic-agenda/internal/models"
)

// UpdateFields descreve uma atualização parcial; campos nil são
// preservados. Status fica de fora: transições passam pelas ações de
// domínio Complete/Cancel, nunca por escrita direta.
type UpdateFields struct {
	PatientID   *uuid.UUID
	ScheduledAt *time.Time
	DurationMin *int
	Kind        *string
	Amount      *float64
	Notes       *string
	Paid        *bool
}

// Repository media todas as leituras e escritas de consultas no banco.
// Todo caminho de leitura devolve o resumo do paciente junto (join em
// tempo de consulta; os campos nunca são duplicados na tabela).
type Repository interface {
	// -------- Reads --------
	ListAll(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Appointment, error)

	ListForDay(
		ctx context.Context,
		ownerID uuid.UUID,
		day time.Time,
		loc *time.Location,
	) ([]models.Appointment, error)

	ListForWeek(
		ctx context.Context,
		ownerID uuid.UUID,
		weekStart time.Time,
		loc *time.Location,
	) ([]models.Appointment, error)

	ListUpcoming(
		ctx context.Context,
		ownerID uuid.UUID,
		now time.Time,
		limit int,
	) ([]models.Appointment, error)

	// GetByID devolve (nil, nil) quando a consulta não existe: ausência
	// é um resultado normal de lookup pontual, não um erro.
	GetByID(
		ctx context.Context,
		ownerID uuid.UUID,
		id uuid.UUID,
	) (*models.Appointment, error)

	// -------- Patient summary --------
	GetPatient(
		ctx context.Context,
		ownerID uuid.UUID,
		id uuid.UUID,
	) (*models.Patient, error)

	// -------- Writes --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Save(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ownerID uuid.UUID,
		id uuid.UUID,
		fields UpdateFields,
	) (*models.Appointment, error)

	Delete(
		ctx context.Context,
		ownerID uuid.UUID,
		id uuid.UUID,
	) error
}
