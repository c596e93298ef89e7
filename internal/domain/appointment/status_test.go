package appointment

import (
	"testing"
	"time"

	"github.com/neuropedapp/clinic-agenda/internal/httperr"
	"github.com/neuropedapp/clinic-agenda/internal/models"
)

func TestStatusBadgeClass(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusScheduled, "bg-blue-100 text-blue-800"},
		{StatusCompleted, "bg-green-100 text-green-800"},
		{StatusCancelled, "bg-red-100 text-red-800"},
		{Status("no_show"), "bg-gray-100 text-gray-800"},
		{Status(""), "bg-gray-100 text-gray-800"},
	}

	for _, tt := range tests {
		if got := StatusBadgeClass(tt.status); got != tt.want {
			t.Errorf("StatusBadgeClass(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	valid := []struct{ from, to Status }{
		{StatusScheduled, StatusCompleted},
		{StatusScheduled, StatusCancelled},
	}
	for _, tt := range valid {
		if err := CanTransition(tt.from, tt.to); err != nil {
			t.Errorf("CanTransition(%q, %q) = %v, want nil", tt.from, tt.to, err)
		}
	}

	invalid := []struct{ from, to Status }{
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusCompleted},
		{StatusCompleted, StatusScheduled},
		{StatusScheduled, StatusScheduled},
		{Status("no_show"), StatusCompleted},
	}
	for _, tt := range invalid {
		err := CanTransition(tt.from, tt.to)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("CanTransition(%q, %q) = %v, want invalid_state", tt.from, tt.to, err)
		}
	}
}

func TestStatusKnownAndTerminal(t *testing.T) {
	if !StatusScheduled.Known() || StatusScheduled.Terminal() {
		t.Error("scheduled must be known and non-terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Error("completed and cancelled must be terminal")
	}
	if Status("agendada").Known() {
		t.Error("legacy value must not be treated as known")
	}
}

func TestCompleteAction(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %q, want completed", ap.Status)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", ap.CompletedAt, now)
	}

	// Terminal: não conclui de novo nem cancela depois.
	if err := Complete(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("second Complete = %v, want invalid_state", err)
	}
	if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("Cancel after Complete = %v, want invalid_state", err)
	}
}

func TestCancelAction(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Errorf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Errorf("CancelledAt = %v, want %v", ap.CancelledAt, now)
	}
}
