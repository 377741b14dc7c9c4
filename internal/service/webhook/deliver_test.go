package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDeliverSignsAndPosts(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	clinicID := uuid.New()

	var gotSig, gotEvent string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-Webhook-Signature")
		gotEvent = r.Header.Get("X-Webhook-Event")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	body, err := encodePayload(NewPayload("appointment.created", clinicID, map[string]any{"id": "abc"}))
	if err != nil {
		t.Fatalf("encodePayload() error: %v", err)
	}

	d := newDeliverer(5 * time.Second)
	if err := d.deliver(context.Background(), srv.URL, secret, "appointment.created", body); err != nil {
		t.Fatalf("deliver() error: %v", err)
	}

	if gotEvent != "appointment.created" {
		t.Errorf("X-Webhook-Event = %q, want appointment.created", gotEvent)
	}
	if !VerifySignature(secret, gotBody, gotSig) {
		t.Error("received signature does not verify against received body")
	}

	var p Payload
	if err := json.Unmarshal(gotBody, &p); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if p.Event != "appointment.created" || p.ClinicID != clinicID.String() {
		t.Errorf("payload = %+v", p)
	}
	if _, err := time.Parse(time.RFC3339, p.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", p.Timestamp, err)
	}
}

func TestDeliverStatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"200", http.StatusOK, false},
		{"204", http.StatusNoContent, false},
		{"301", http.StatusMovedPermanently, true},
		{"400", http.StatusBadRequest, true},
		{"500", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			d := newDeliverer(5 * time.Second)
			err := d.deliver(context.Background(), srv.URL, "0123456789abcdef0123456789abcdef", TestEvent, []byte(`{}`))
			if tt.wantErr && err == nil {
				t.Error("deliver() = nil error, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("deliver() error: %v", err)
			}
		})
	}
}

func TestDeliverTransportError(t *testing.T) {
	d := newDeliverer(time.Second)
	err := d.deliver(context.Background(), "http://127.0.0.1:1", "0123456789abcdef0123456789abcdef", TestEvent, []byte(`{}`))
	if err == nil {
		t.Error("deliver() to a closed port = nil error, want error")
	}
}
