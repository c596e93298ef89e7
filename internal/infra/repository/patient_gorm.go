package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neuropedapp/clinic-agenda/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

// List devolve os pacientes do profissional; query filtra por nome,
// telefone ou e-mail e activeOnly restringe aos ativos.
func (r *PatientGormRepository) List(
	ctx context.Context,
	ownerID uuid.UUID,
	query string,
	activeOnly bool,
) ([]models.Patient, error) {

	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)

	if query != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	if activeOnly {
		q = q.Where("status = ?", models.PatientActive)
	}

	var patients []models.Patient
	if err := q.Order("name ASC").Find(&patients).Error; err != nil {
		return nil, err
	}

	return patients, nil
}

// GetByID devolve (nil, nil) quando o paciente não existe.
func (r *PatientGormRepository) GetByID(
	ctx context.Context,
	ownerID uuid.UUID,
	id uuid.UUID,
) (*models.Patient, error) {

	var p models.Patient
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PatientGormRepository) Create(
	ctx context.Context,
	p *models.Patient,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PatientGormRepository) Save(
	ctx context.Context,
	p *models.Patient,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PatientGormRepository) CountByStatus(
	ctx context.Context,
	ownerID uuid.UUID,
	status string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("user_id = ? AND status = ?", ownerID, status).
		Count(&count).Error

	return count, err
}

func (r *PatientGormRepository) CountAll(
	ctx context.Context,
	ownerID uuid.UUID,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error

	return count, err
}
