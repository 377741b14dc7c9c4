package appointment

import "testing"

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"PENDING", true},
		{"CONFIRMED", true},
		{"CANCELLED", true},
		{"NOSHOW", true},
		{"COMPLETED", true},
		{"pending", false},
		{"BOOKED", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := validStatus(tt.status); got != tt.want {
				t.Errorf("validStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestTransitionAllowedIsOneWay(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"PENDING", "CONFIRMED", true},
		{"PENDING", "CANCELLED", true},
		{"CONFIRMED", "COMPLETED", true},
		{"CONFIRMED", "NOSHOW", true},
		{"CANCELLED", "CONFIRMED", false},
		{"COMPLETED", "CANCELLED", false},
		{"NOSHOW", "PENDING", false},
		{"COMPLETED", "CONFIRMED", false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			if got := transitionAllowed(tt.from, tt.to); got != tt.want {
				t.Errorf("transitionAllowed(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
