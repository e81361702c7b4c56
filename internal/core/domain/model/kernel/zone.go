package kernel

import (
	"fmt"
	"strings"

	"grocery/internal/pkg/errs"
)

const (
	zoneCodeMinLength = 3
	zoneCodeMaxLength = 10
)

// ErrZoneCodeIsNotConstructed indicates that a ZoneCode was not created via NewZoneCode.
var ErrZoneCodeIsNotConstructed = errs.NewValueIsRequiredError("ZoneCode must be created via NewZoneCode")

// ZoneCode is a value object representing the service-area key used to match
// orders to delivery partners operating in the same area. In production it is
// a postal code, but the domain only requires an opaque, comparable key.
//
// ZoneCode is immutable; the zero value is invalid and fails Validate.
//
// Example:
//
//	zone, err := kernel.NewZoneCode("560001")
//	if err != nil {
//	    // handle validation error
//	}
type ZoneCode struct {
	code string
}

// NewZoneCode creates a ZoneCode from its string form.
// The code is trimmed and must be 3 to 10 alphanumeric characters.
func NewZoneCode(code string) (ZoneCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return ZoneCode{}, errs.NewValueIsRequiredError("zoneCode")
	}
	if len(code) < zoneCodeMinLength || len(code) > zoneCodeMaxLength {
		return ZoneCode{}, errs.NewValueIsOutOfRangeError("zoneCode length", len(code), zoneCodeMinLength, zoneCodeMaxLength)
	}
	for _, r := range code {
		if !isZoneCodeRune(r) {
			return ZoneCode{}, errs.NewValueIsInvalidErrorWithCause("zoneCode",
				fmt.Errorf("%q contains a character that is not a letter or digit", code))
		}
	}

	return ZoneCode{code: code}, nil
}

func isZoneCodeRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// String returns the zone code as stored.
func (z ZoneCode) String() string {
	return z.code
}

// IsEqual compares two zone codes for equality.
func (z ZoneCode) IsEqual(other ZoneCode) bool {
	return z.code == other.code
}

// Validate checks that the ZoneCode was properly constructed.
func (z ZoneCode) Validate() error {
	if z.code == "" {
		return ErrZoneCodeIsNotConstructed
	}
	return nil
}
