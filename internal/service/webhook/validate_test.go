package webhook

import (
	"strings"
	"testing"
)

func TestCreateEndpointRequestValidate(t *testing.T) {
	valid := CreateEndpointRequest{
		URL:    "https://example.com/hooks",
		Secret: strings.Repeat("s", 32),
		Events: []string{"appointment.created", "patient.created"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate(valid) = %v", err)
	}

	tests := []struct {
		name string
		mut  func(r *CreateEndpointRequest)
	}{
		{"empty url", func(r *CreateEndpointRequest) { r.URL = "" }},
		{"ftp url", func(r *CreateEndpointRequest) { r.URL = "ftp://example.com" }},
		{"not a url", func(r *CreateEndpointRequest) { r.URL = "not a url" }},
		{"short secret", func(r *CreateEndpointRequest) { r.Secret = strings.Repeat("s", 31) }},
		{"empty secret", func(r *CreateEndpointRequest) { r.Secret = "" }},
		{"no events", func(r *CreateEndpointRequest) { r.Events = nil }},
		{"unknown event", func(r *CreateEndpointRequest) { r.Events = []string{"appointment.rescheduled"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.Events = append([]string(nil), valid.Events...)
			tt.mut(&req)
			if err := req.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestUpdateEndpointRequestValidate(t *testing.T) {
	if err := (UpdateEndpointRequest{}).Validate(); err != nil {
		t.Fatalf("Validate(empty update) = %v", err)
	}

	goodURL := "https://example.com/hooks"
	badURL := "ftp://example.com"
	shortSecret := strings.Repeat("s", 16)
	goodSecret := strings.Repeat("s", 48)

	if err := (UpdateEndpointRequest{URL: &goodURL, Secret: &goodSecret}).Validate(); err != nil {
		t.Errorf("Validate(good update) = %v", err)
	}
	if err := (UpdateEndpointRequest{URL: &badURL}).Validate(); err == nil {
		t.Error("Validate() accepted non-http URL")
	}
	if err := (UpdateEndpointRequest{Secret: &shortSecret}).Validate(); err == nil {
		t.Error("Validate() accepted short secret")
	}
	if err := (UpdateEndpointRequest{Events: []string{"bogus"}}).Validate(); err == nil {
		t.Error("Validate() accepted unknown event")
	}
}

func TestSubscribed(t *testing.T) {
	set := []string{"appointment.created", "appointment.cancelled"}
	if !subscribed(set, "appointment.created") {
		t.Error("subscribed() missed a registered event")
	}
	if subscribed(set, "patient.created") {
		t.Error("subscribed() matched an unregistered event")
	}
	if subscribed(nil, "appointment.created") {
		t.Error("subscribed() matched against an empty set")
	}
}
