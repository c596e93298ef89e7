package handlers

import (
	"time"

	"github.com/neuropedapp/clinic-agenda/internal/timezone"
)

// parseDateIn interpreta "2006-01-02" no fuso do consultório.
func parseDateIn(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location(tz))
}

// parseInstantIn aceita o instante como RFC3339 (com offset) ou, na
// ausência de offset, como horário local do consultório.
func parseInstantIn(tz string, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", value, timezone.Location(tz))
}
