package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/neuropedapp/clinic-agenda/internal/domain/appointment"
	"github.com/neuropedapp/clinic-agenda/internal/dto"
	"github.com/neuropedapp/clinic-agenda/internal/models"
)

// DayBucket agrupa as consultas de um dia-calendário da visão atual.
type DayBucket struct {
	Date         string                   `json:"date"`
	Weekday      string                   `json:"weekday"`
	Appointments []dto.AppointmentListDTO `json:"appointments"`
}

type View struct {
	Mode      ViewMode    `json:"mode"`
	Reference time.Time   `json:"reference"`
	Start     time.Time   `json:"start"`
	End       time.Time   `json:"end"`
	Label     string      `json:"label"`
	Available bool        `json:"available"`
	Days      []DayBucket `json:"days"`
}

// Loader decide qual consulta disparar a partir da visão e da data de
// referência, e agrupa o resultado por dia para a renderização.
type Loader struct {
	repo domain.Repository
	loc  *time.Location
}

func NewLoader(repo domain.Repository, loc *time.Location) *Loader {
	return &Loader{repo: repo, loc: loc}
}

func (l *Loader) Load(
	ctx context.Context,
	ownerID uuid.UUID,
	reference time.Time,
	mode ViewMode,
) (*View, error) {

	switch mode {
	case ViewDay:
		return l.loadDay(ctx, ownerID, reference)
	case ViewWeek:
		return l.loadWeek(ctx, ownerID, reference)
	case ViewMonth:
		// A visão mensal ainda não existe: a agenda sinaliza
		// indisponível sem erro, igual às demais telas em construção.
		start, end := DayRange(reference, l.loc)
		return &View{
			Mode:      ViewMonth,
			Reference: reference,
			Start:     start,
			End:       end,
			Label:     reference.In(l.loc).Format("01/2006"),
			Available: false,
			Days:      []DayBucket{},
		}, nil
	}

	return nil, fmt.Errorf("unknown view mode %q", mode)
}

func (l *Loader) loadDay(
	ctx context.Context,
	ownerID uuid.UUID,
	reference time.Time,
) (*View, error) {

	start, end := DayRange(reference, l.loc)

	aps, err := l.repo.ListForDay(ctx, ownerID, reference, l.loc)
	if err != nil {
		return nil, err
	}

	return &View{
		Mode:      ViewDay,
		Reference: reference,
		Start:     start,
		End:       end,
		Label:     start.Format("02/01/2006"),
		Available: true,
		Days:      []DayBucket{bucketFor(start, aps, l.loc)},
	}, nil
}

func (l *Loader) loadWeek(
	ctx context.Context,
	ownerID uuid.UUID,
	reference time.Time,
) (*View, error) {

	start, end := WeekRange(reference, l.loc)

	aps, err := l.repo.ListForWeek(ctx, ownerID, start, l.loc)
	if err != nil {
		return nil, err
	}

	days := make([]DayBucket, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		days = append(days, bucketFor(day, aps, l.loc))
	}

	return &View{
		Mode:      ViewWeek,
		Reference: reference,
		Start:     start,
		End:       end,
		Label:     fmt.Sprintf("%s - %s", start.Format("02/01/2006"), end.Format("02/01/2006")),
		Available: true,
		Days:      days,
	}, nil
}

// bucketFor compara a porção de data no fuso da agenda, nunca a string
// ISO crua: evita o deslocamento de um dia perto da meia-noite em fusos
// não-UTC.
func bucketFor(day time.Time, aps []models.Appointment, loc *time.Location) DayBucket {
	key := day.In(loc).Format("2006-01-02")

	matched := make([]models.Appointment, 0)
	for _, ap := range aps {
		if ap.ScheduledAt.In(loc).Format("2006-01-02") == key {
			matched = append(matched, ap)
		}
	}

	return DayBucket{
		Date:         key,
		Weekday:      day.In(loc).Weekday().String(),
		Appointments: dto.FromAppointments(matched, loc),
	}
}
