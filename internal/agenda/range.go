package agenda

import "time"

// ViewMode seleciona a janela da agenda exibida ao profissional.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return ViewMode(s), true
	}
	return "", false
}

type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// StartOfDay trunca para 00:00:00.000 no fuso informado.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay posiciona em 23:59:59.999 no fuso informado. O limite é
// inclusivo: uma sessão exatamente em 23:59:59.999 pertence ao dia.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
}

// StartOfWeek volta até o domingo mais recente (weekday 0), meia-noite.
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	d := StartOfDay(t, loc)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DayRange devolve os limites inclusivos [00:00:00.000, 23:59:59.999] do dia.
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	return StartOfDay(t, loc), EndOfDay(t, loc)
}

// WeekRange devolve os limites inclusivos da semana de t: do domingo
// 00:00:00.000 ao sábado 23:59:59.999. Sempre sete dias corridos,
// inclusive sobre viradas de mês e ano.
func WeekRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfWeek(t, loc)
	return start, EndOfDay(start.AddDate(0, 0, 6), loc)
}

// Navigate desloca a data de referência em um passo da visão atual:
// um dia, sete dias ou um mês-calendário.
func Navigate(t time.Time, mode ViewMode, dir Direction) time.Time {
	step := int(dir)
	switch mode {
	case ViewDay:
		return t.AddDate(0, 0, step)
	case ViewWeek:
		return t.AddDate(0, 0, 7*step)
	case ViewMonth:
		return t.AddDate(0, step, 0)
	}
	return t
}
