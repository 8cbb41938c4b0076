package domain

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]DutyStatus{
		"SLEEPER": StatusSleeper,
		"SB":      StatusSleeper,
		"ON-DUTY": StatusOn,
		"ON":      StatusOn,
		"DRIVING": StatusDriving,
		"OFF":     StatusOff,
		"":        StatusOff,
		"driving": StatusOff, // matching is case-sensitive
		"BREAK":   StatusOff,
	}

	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeStatusIdempotent(t *testing.T) {
	inputs := []string{"SLEEPER", "SB", "ON-DUTY", "ON", "DRIVING", "OFF", "", "garbage"}

	for _, raw := range inputs {
		once := NormalizeStatus(raw)
		twice := NormalizeStatus(string(once))
		if once != twice {
			t.Errorf("normalize not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestDutyStatusLane(t *testing.T) {
	cases := []struct {
		status DutyStatus
		lane   int
	}{
		{StatusOff, 0},
		{StatusSleeper, 1},
		{StatusDriving, 2},
		{StatusOn, 3},
	}

	for _, c := range cases {
		if got := c.status.Lane(); got != c.lane {
			t.Errorf("%s.Lane() = %d, want %d", c.status, got, c.lane)
		}
	}

	// Unknown statuses land in the OFF lane, same as normalization.
	if got := DutyStatus("BOGUS").Lane(); got != 0 {
		t.Errorf("unknown status lane = %d, want 0", got)
	}
}
