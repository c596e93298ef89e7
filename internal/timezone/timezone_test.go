package timezone

import "testing"

func TestIsValid(t *testing.T) {
	cases := []struct {
		tz   string
		want bool
	}{
		{"America/Sao_Paulo", true},
		{"UTC", true},
		{"Europe/Lisbon", true},
		{"", false},
		{"Mars/Olympus", false},
	}

	for _, tc := range cases {
		if got := IsValid(tc.tz); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.tz, got, tc.want)
		}
	}
}

func TestLocationFallsBackToDefault(t *testing.T) {
	for _, tz := range []string{"", "Mars/Olympus"} {
		loc := Location(tz)
		if loc.String() != DefaultTimezone {
			t.Errorf("Location(%q) = %s, want %s", tz, loc, DefaultTimezone)
		}
	}
}

func TestLocationHonoursValidZone(t *testing.T) {
	loc := Location("UTC")
	if loc.String() != "UTC" {
		t.Errorf("Location(UTC) = %s", loc)
	}
}
