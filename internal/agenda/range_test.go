package agenda

import (
	"testing"
	"time"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	return loc
}

func TestStartOfDay(t *testing.T) {
	loc := saoPaulo(t)
	in := time.Date(2024, 3, 15, 14, 30, 45, 123456789, loc)

	got := StartOfDay(in, loc)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	loc := time.UTC
	in := time.Date(2024, 3, 15, 8, 0, 0, 0, loc)

	got := EndOfDay(in, loc)
	want := time.Date(2024, 3, 15, 23, 59, 59, int(999*time.Millisecond), loc)

	if !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
}

func TestStartOfWeekProperty(t *testing.T) {
	// Para qualquer data D: StartOfWeek(D) <= D < StartOfWeek(D) + 7d,
	// e o resultado cai sempre num domingo à meia-noite.
	loc := time.UTC
	dates := []time.Time{
		time.Date(2024, 3, 10, 0, 0, 0, 0, loc),  // domingo
		time.Date(2024, 3, 13, 12, 0, 0, 0, loc), // quarta
		time.Date(2024, 3, 16, 23, 59, 59, 0, loc),
		time.Date(2024, 1, 1, 0, 0, 0, 0, loc),
		time.Date(2024, 12, 31, 18, 45, 0, 0, loc),
		time.Date(2024, 2, 29, 10, 0, 0, 0, loc), // ano bissexto
	}

	for _, d := range dates {
		start := StartOfWeek(d, loc)

		if start.Weekday() != time.Sunday {
			t.Errorf("StartOfWeek(%v).Weekday() = %v, want Sunday", d, start.Weekday())
		}
		if start.After(d) {
			t.Errorf("StartOfWeek(%v) = %v is after the input date", d, start)
		}
		if !d.Before(start.AddDate(0, 0, 7)) {
			t.Errorf("date %v is not within 7 days of StartOfWeek %v", d, start)
		}
	}
}

func TestWeekRangeSpansSevenDays(t *testing.T) {
	loc := time.UTC

	// Inclui a virada de fevereiro em ano bissexto e a virada de ano.
	dates := []time.Time{
		time.Date(2024, 2, 29, 10, 0, 0, 0, loc),
		time.Date(2023, 12, 31, 10, 0, 0, 0, loc),
		time.Date(2024, 3, 15, 10, 0, 0, 0, loc),
	}

	for _, d := range dates {
		start, end := WeekRange(d, loc)

		days := 0
		for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 1) {
			days++
		}
		if days != 7 {
			t.Errorf("WeekRange(%v) spans %d days, want 7", d, days)
		}

		wantEnd := EndOfDay(start.AddDate(0, 0, 6), loc)
		if !end.Equal(wantEnd) {
			t.Errorf("WeekRange(%v) end = %v, want %v", d, end, wantEnd)
		}
	}
}

func TestNavigateWeekRoundTrip(t *testing.T) {
	loc := saoPaulo(t)
	d := time.Date(2024, 3, 15, 10, 0, 0, 0, loc)

	got := Navigate(Navigate(d, ViewWeek, Forward), ViewWeek, Backward)
	if !got.Equal(d) {
		t.Errorf("week forward+backward = %v, want %v", got, d)
	}
}

func TestNavigateSteps(t *testing.T) {
	loc := time.UTC
	d := time.Date(2024, 3, 15, 10, 0, 0, 0, loc)

	tests := []struct {
		mode ViewMode
		dir  Direction
		want time.Time
	}{
		{ViewDay, Forward, time.Date(2024, 3, 16, 10, 0, 0, 0, loc)},
		{ViewDay, Backward, time.Date(2024, 3, 14, 10, 0, 0, 0, loc)},
		{ViewWeek, Forward, time.Date(2024, 3, 22, 10, 0, 0, 0, loc)},
		{ViewWeek, Backward, time.Date(2024, 3, 8, 10, 0, 0, 0, loc)},
		{ViewMonth, Forward, time.Date(2024, 4, 15, 10, 0, 0, 0, loc)},
		{ViewMonth, Backward, time.Date(2024, 2, 15, 10, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		got := Navigate(d, tt.mode, tt.dir)
		if !got.Equal(tt.want) {
			t.Errorf("Navigate(%v, %v, %d) = %v, want %v", d, tt.mode, tt.dir, got, tt.want)
		}
	}
}

func TestParseViewMode(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		if _, ok := ParseViewMode(valid); !ok {
			t.Errorf("ParseViewMode(%q) rejected a valid mode", valid)
		}
	}

	if _, ok := ParseViewMode("year"); ok {
		t.Error("ParseViewMode accepted an unknown mode")
	}
}
