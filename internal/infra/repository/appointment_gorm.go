package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neuropedapp/clinic-agenda/internal/agenda"
	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("user_id = ?", ownerID).
		Order("scheduled_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) listForPeriod(
	ctx context.Context,
	ownerID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where(
			"user_id = ? AND scheduled_at >= ? AND scheduled_at <= ?",
			ownerID, start, end,
		).
		Order("scheduled_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	ownerID uuid.UUID,
	day time.Time,
	loc *time.Location,
) ([]models.Appointment, error) {

	start, end := agenda.DayRange(day, loc)
	return r.listForPeriod(ctx, ownerID, start, end)
}

func (r *AppointmentGormRepository) ListForWeek(
	ctx context.Context,
	ownerID uuid.UUID,
	weekStart time.Time,
	loc *time.Location,
) ([]models.Appointment, error) {

	start, end := agenda.WeekRange(weekStart, loc)
	return r.listForPeriod(ctx, ownerID, start, end)
}

func (r *AppointmentGormRepository) ListUpcoming(
	ctx context.Context,
	ownerID uuid.UUID,
	now time.Time,
	limit int,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where(
			"user_id = ? AND scheduled_at >= ? AND status = ?",
			ownerID, now, string(domain.StatusScheduled),
		).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	ownerID uuid.UUID,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Patient summary
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPatient(
	ctx context.Context,
	ownerID uuid.UUID,
	id uuid.UUID,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&p).Error; err != nil {
		return nil, err
	}

	return &p, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return err
	}

	// Recarrega com o resumo do paciente para devolver o registro já
	// no formato dos caminhos de leitura.
	return r.db.WithContext(ctx).
		Preload("Patient").
		First(ap, "id = ?", ap.ID).Error
}

func (r *AppointmentGormRepository) Save(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ownerID uuid.UUID,
	id uuid.UUID,
	fields domain.UpdateFields,
) (*models.Appointment, error) {

	ap, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if fields.PatientID != nil {
		ap.PatientID = *fields.PatientID
	}
	if fields.ScheduledAt != nil {
		ap.ScheduledAt = *fields.ScheduledAt
	}
	if fields.DurationMin != nil {
		ap.DurationMin = *fields.DurationMin
	}
	if fields.Kind != nil {
		ap.Kind = *fields.Kind
	}
	if fields.Amount != nil {
		ap.Amount = fields.Amount
	}
	if fields.Notes != nil {
		ap.Notes = *fields.Notes
	}
	if fields.Paid != nil {
		ap.Paid = *fields.Paid
	}

	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, ownerID, id)
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	ownerID uuid.UUID,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Appointment{}).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
