package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/models"
)

// stubRepository devolve um conjunto fixo de consultas para os testes
// da montagem da visão.
type stubRepository struct {
	appointments []models.Appointment
	err          error
}

func (s *stubRepository) ListAll(ctx context.Context, ownerID uuid.UUID) ([]models.Appointment, error) {
	return s.appointments, s.err
}

func (s *stubRepository) ListForDay(ctx context.Context, ownerID uuid.UUID, day time.Time, loc *time.Location) ([]models.Appointment, error) {
	return s.appointments, s.err
}

func (s *stubRepository) ListForWeek(ctx context.Context, ownerID uuid.UUID, weekStart time.Time, loc *time.Location) ([]models.Appointment, error) {
	return s.appointments, s.err
}

func (s *stubRepository) ListUpcoming(ctx context.Context, ownerID uuid.UUID, now time.Time, limit int) ([]models.Appointment, error) {
	return s.appointments, s.err
}

func (s *stubRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubRepository) GetPatient(ctx context.Context, ownerID, id uuid.UUID) (*models.Patient, error) {
	return nil, nil
}

func (s *stubRepository) Create(ctx context.Context, ap *models.Appointment) error { return nil }
func (s *stubRepository) Save(ctx context.Context, ap *models.Appointment) error   { return nil }

func (s *stubRepository) Update(ctx context.Context, ownerID, id uuid.UUID, fields domain.UpdateFields) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error { return nil }

var _ domain.Repository = (*stubRepository)(nil)

func apAt(t time.Time) models.Appointment {
	return models.Appointment{
		ID:          uuid.New(),
		ScheduledAt: t,
		DurationMin: 60,
		Kind:        models.KindInPerson,
		Status:      string(domain.StatusScheduled),
		Patient:     models.Patient{Name: "Ana"},
	}
}

func TestLoaderWeekViewBuckets(t *testing.T) {
	loc := time.UTC
	// Semana de 10/03/2024 (domingo) a 16/03/2024 (sábado).
	reference := time.Date(2024, 3, 13, 12, 0, 0, 0, loc)

	repo := &stubRepository{appointments: []models.Appointment{
		apAt(time.Date(2024, 3, 10, 9, 0, 0, 0, loc)),
		apAt(time.Date(2024, 3, 13, 10, 0, 0, 0, loc)),
		apAt(time.Date(2024, 3, 13, 15, 0, 0, 0, loc)),
		apAt(time.Date(2024, 3, 16, 23, 30, 0, 0, loc)),
	}}

	view, err := NewLoader(repo, loc).Load(context.Background(), uuid.New(), reference, ViewWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !view.Available {
		t.Error("week view should be available")
	}
	if len(view.Days) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(view.Days))
	}

	counts := map[string]int{}
	for _, day := range view.Days {
		counts[day.Date] = len(day.Appointments)
	}

	want := map[string]int{
		"2024-03-10": 1,
		"2024-03-11": 0,
		"2024-03-12": 0,
		"2024-03-13": 2,
		"2024-03-14": 0,
		"2024-03-15": 0,
		"2024-03-16": 1,
	}

	for date, n := range want {
		if counts[date] != n {
			t.Errorf("bucket %s has %d appointments, want %d", date, counts[date], n)
		}
	}
}

func TestLoaderBucketsNearMidnightInPracticeZone(t *testing.T) {
	// Instante UTC que já é o dia seguinte, mas ainda véspera no fuso
	// do consultório (UTC-3): deve cair no bucket do dia local.
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 2024-03-14T01:30Z == 2024-03-13 22:30 em São Paulo.
	repo := &stubRepository{appointments: []models.Appointment{
		apAt(time.Date(2024, 3, 14, 1, 30, 0, 0, time.UTC)),
	}}

	reference := time.Date(2024, 3, 13, 12, 0, 0, 0, loc)
	view, err := NewLoader(repo, loc).Load(context.Background(), uuid.New(), reference, ViewDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Days) != 1 {
		t.Fatalf("expected 1 day bucket, got %d", len(view.Days))
	}
	if view.Days[0].Date != "2024-03-13" {
		t.Errorf("bucket date = %s, want 2024-03-13", view.Days[0].Date)
	}
	if len(view.Days[0].Appointments) != 1 {
		t.Errorf("expected the appointment in the local-day bucket, got %d", len(view.Days[0].Appointments))
	}
}

func TestLoaderMonthViewNotAvailable(t *testing.T) {
	repo := &stubRepository{}
	reference := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

	view, err := NewLoader(repo, time.UTC).Load(context.Background(), uuid.New(), reference, ViewMonth)
	if err != nil {
		t.Fatalf("month view must not error: %v", err)
	}

	if view.Available {
		t.Error("month view should report available=false")
	}
	if len(view.Days) != 0 {
		t.Errorf("month view should have no buckets, got %d", len(view.Days))
	}
}

func TestLoaderDayViewSingleBucket(t *testing.T) {
	loc := time.UTC
	reference := time.Date(2024, 3, 13, 12, 0, 0, 0, loc)

	repo := &stubRepository{appointments: []models.Appointment{
		apAt(time.Date(2024, 3, 13, 9, 0, 0, 0, loc)),
	}}

	view, err := NewLoader(repo, loc).Load(context.Background(), uuid.New(), reference, ViewDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Days) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(view.Days))
	}
	if got := view.Days[0].Appointments; len(got) != 1 || got[0].PatientName != "Ana" {
		t.Errorf("unexpected bucket contents: %+v", got)
	}
}
