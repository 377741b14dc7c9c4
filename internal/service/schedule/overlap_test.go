package schedule

import "testing"

func TestValidTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"0930", false},
		{"", false},
		{"ab:cd", false},
	}

	for _, tt := range tests {
		if got := validTimeOfDay(tt.in); got != tt.want {
			t.Errorf("validTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"partial", "09:00", "10:30", "10:00", "11:00", true},
		{"touching", "09:00", "10:00", "10:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"one minute", "09:00", "10:01", "10:00", "11:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("rangesOverlap() = %v, want %v", got, tt.want)
			}
			if sym := rangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); sym != got {
				t.Errorf("rangesOverlap() not symmetric")
			}
		})
	}
}

func TestValidateSpec(t *testing.T) {
	good := CreateSlotRequest{Weekday: 1, StartTime: "09:00", EndTime: "12:00"}
	if err := validateSpec(good); err != nil {
		t.Fatalf("validateSpec(valid) = %v", err)
	}

	tests := []struct {
		name string
		req  CreateSlotRequest
		want error
	}{
		{"weekday low", CreateSlotRequest{Weekday: 0, StartTime: "09:00", EndTime: "10:00"}, ErrInvalidWeekday},
		{"weekday high", CreateSlotRequest{Weekday: 8, StartTime: "09:00", EndTime: "10:00"}, ErrInvalidWeekday},
		{"bad start", CreateSlotRequest{Weekday: 3, StartTime: "9:00", EndTime: "10:00"}, ErrInvalidTime},
		{"bad end", CreateSlotRequest{Weekday: 3, StartTime: "09:00", EndTime: "25:00"}, ErrInvalidTime},
		{"inverted", CreateSlotRequest{Weekday: 3, StartTime: "10:00", EndTime: "09:00"}, ErrInvalidRange},
		{"zero length", CreateSlotRequest{Weekday: 3, StartTime: "09:00", EndTime: "09:00"}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSpec(tt.req); err != tt.want {
				t.Errorf("validateSpec() = %v, want %v", err, tt.want)
			}
		})
	}
}
