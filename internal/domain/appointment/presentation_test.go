package appointment

import (
	"testing"
	"time"
)

func TestSessionWindow(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)

	if got := SessionWindow(start, 60, loc); got != "09:00 - 10:00" {
		t.Errorf("SessionWindow = %q, want %q", got, "09:00 - 10:00")
	}

	// Sessão que cruza a meia-noite formata o fim no dia seguinte.
	late := time.Date(2024, 3, 15, 23, 30, 0, 0, loc)
	if got := SessionWindow(late, 45, loc); got != "23:30 - 00:15" {
		t.Errorf("SessionWindow = %q, want %q", got, "23:30 - 00:15")
	}
}

func TestFormatHelpers(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 2024-03-15T12:30Z == 09:30 em São Paulo.
	instant := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

	if got := FormatTime(instant, loc); got != "09:30" {
		t.Errorf("FormatTime = %q, want %q", got, "09:30")
	}
	if got := FormatDate(instant, loc); got != "15/03/2024" {
		t.Errorf("FormatDate = %q, want %q", got, "15/03/2024")
	}
	if got := FormatDateTime(instant, loc); got != "15/03/2024 09:30" {
		t.Errorf("FormatDateTime = %q, want %q", got, "15/03/2024 09:30")
	}
}
