package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		region  string
		want    string
		wantErr bool
	}{
		{
			name:   "e164 passthrough",
			raw:    "+989121234567",
			region: "",
			want:   "+989121234567",
		},
		{
			name:   "national format default region",
			raw:    "0912 123 4567",
			region: "",
			want:   "+989121234567",
		},
		{
			name:   "explicit region",
			raw:    "(415) 555-2671",
			region: "US",
			want:   "+14155552671",
		},
		{
			name:    "empty input",
			raw:     "  ",
			region:  "",
			wantErr: true,
		},
		{
			name:    "garbage input",
			raw:     "not-a-number",
			region:  "",
			wantErr: true,
		},
		{
			name:    "too short",
			raw:     "12345",
			region:  "IR",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, tt.region)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q, %q) = %q, want error", tt.raw, tt.region, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q, %q) error: %v", tt.raw, tt.region, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.raw, tt.region, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("+989121234567", "") {
		t.Error("expected valid E.164 number to pass")
	}
	if IsValid("abc", "") {
		t.Error("expected garbage to fail")
	}
}
