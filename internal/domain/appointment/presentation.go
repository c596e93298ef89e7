package appointment

import (
	"fmt"
	"time"
)

// ===============================
// Presentation helpers
// ===============================

// StatusBadgeClass devolve a classe do badge exibido na agenda. O ramo
// default cobre valores legados fora do ciclo de vida conhecido.
func StatusBadgeClass(s Status) string {
	switch s {
	case StatusScheduled:
		return "bg-blue-100 text-blue-800"
	case StatusCompleted:
		return "bg-green-100 text-green-800"
	case StatusCancelled:
		return "bg-red-100 text-red-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}

func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006 15:04")
}

// SessionWindow formata o intervalo da sessão a partir do início e da
// duração, ex.: "09:00 - 10:00".
func SessionWindow(start time.Time, durationMin int, loc *time.Location) string {
	end := start.Add(time.Duration(durationMin) * time.Minute)
	return fmt.Sprintf("%s - %s", FormatTime(start, loc), FormatTime(end, loc))
}
