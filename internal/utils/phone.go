package utils

import (
	"fmt"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// DefaultPhoneRegion is used when a number has no country code.
const DefaultPhoneRegion = "BR"

// NormalizePhone parses raw in the given region and returns it in E.164.
// An empty region falls back to DefaultPhoneRegion.
func NormalizePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if region == "" {
		region = DefaultPhoneRegion
	}
	num, err := libphonenumber.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return "", err
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", fmt.Errorf("phone number is not valid")
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}
