package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the hex HMAC-SHA256 of body under secret. Receivers
// recompute it over the raw request body and compare against the
// X-Webhook-Signature header.
func Signature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether sig matches body under secret, in constant
// time.
func VerifySignature(secret string, body []byte, sig string) bool {
	return hmac.Equal([]byte(Signature(secret, body)), []byte(sig))
}
