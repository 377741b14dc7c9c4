package appointment

import (
	"testing"
	"time"
)

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(0), at(30), at(0), at(30), true},
		{"contained", at(0), at(60), at(15), at(30), true},
		{"partial left", at(0), at(30), at(15), at(45), true},
		{"partial right", at(15), at(45), at(0), at(30), true},
		{"touching end to start", at(0), at(30), at(30), at(60), false},
		{"touching start to end", at(30), at(60), at(0), at(30), false},
		{"disjoint", at(0), at(30), at(60), at(90), false},
		{"one minute overlap", at(0), at(31), at(30), at(60), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("intervalsOverlap() = %v, want %v", got, tt.want)
			}

			// Overlap is symmetric.
			sym := intervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			if sym != got {
				t.Errorf("intervalsOverlap() not symmetric: %v vs %v", got, sym)
			}
		})
	}
}

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"PENDING", "CONFIRMED", true},
		{"PENDING", "CANCELLED", true},
		{"PENDING", "COMPLETED", false},
		{"PENDING", "NOSHOW", false},
		{"CONFIRMED", "COMPLETED", true},
		{"CONFIRMED", "CANCELLED", true},
		{"CONFIRMED", "NOSHOW", true},
		{"CANCELLED", "CONFIRMED", false},
		{"COMPLETED", "CANCELLED", false},
		{"NOSHOW", "CONFIRMED", false},
	}

	for _, tt := range tests {
		if got := transitionAllowed(tt.from, tt.to); got != tt.want {
			t.Errorf("transitionAllowed(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
