// Package phone normalizes phone numbers to E.164 before they are stored.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used to parse numbers given without a country prefix.
const DefaultRegion = "IR"

// Normalize parses raw and returns it formatted as E.164 (e.g. +989121234567).
// Numbers without a leading + are parsed against region; pass "" to use
// DefaultRegion.
func Normalize(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("phone number is empty")
	}
	if region == "" {
		region = DefaultRegion
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// IsValid reports whether raw parses as a valid number for region.
func IsValid(raw, region string) bool {
	_, err := Normalize(raw, region)
	return err == nil
}
