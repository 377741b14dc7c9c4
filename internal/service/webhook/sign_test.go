package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSignature(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	body := []byte(`{"event":"appointment.created","clinicId":"x","timestamp":"t","data":{}}`)

	got := Signature(secret, body)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("Signature() = %s, want %s", got, want)
	}
	if len(got) != 64 {
		t.Errorf("Signature() length = %d, want 64 hex chars", len(got))
	}
}

func TestVerifySignature(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	body := []byte(`{"event":"patient.created"}`)

	sig := Signature(secret, body)

	if !VerifySignature(secret, body, sig) {
		t.Error("VerifySignature() rejected a valid signature")
	}
	if VerifySignature(secret, []byte("tampered"), sig) {
		t.Error("VerifySignature() accepted a tampered body")
	}
	if VerifySignature("another-secret-that-is-32-chars!", body, sig) {
		t.Error("VerifySignature() accepted the wrong secret")
	}
}
