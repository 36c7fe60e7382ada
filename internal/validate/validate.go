// Package validate implements the local, pre-network form validation rules.
// These rules never touch the network; they gate submission and produce the
// inline error strings shown next to a field.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	reEmail    = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	reFullName = regexp.MustCompile(`[^A-Za-z ]`)
	rePrice    = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	reDigits   = regexp.MustCompile(`[^0-9]`)
	rePriceRaw = regexp.MustCompile(`[^0-9.]`)
)

// NormalizeEmail lower-cases and trims an email as typed.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidEmail reports whether s is a valid email after normalization.
func IsValidEmail(s string) bool {
	return reEmail.MatchString(NormalizeEmail(s))
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(s string) bool {
	return len(s) >= 6
}

// FilterFullName strips characters a full name may not contain, mirroring
// the live filtering applied as the user types.
func FilterFullName(s string) string {
	return reFullName.ReplaceAllString(s, "")
}

// IsValidFullName reports whether the (already filtered) name is long enough.
func IsValidFullName(s string) bool {
	return len(FilterFullName(s)) >= 3
}

// FilterPrice strips everything but digits and the decimal point.
func FilterPrice(s string) string {
	return rePriceRaw.ReplaceAllString(s, "")
}

// IsValidPrice reports whether s is a positive amount with at most two
// decimal places.
func IsValidPrice(s string) bool {
	s = strings.TrimSpace(s)
	if !rePrice.MatchString(s) {
		return false
	}
	// 0, 0.0 and 0.00 all pass the format check but are not sellable prices.
	for _, r := range s {
		if r >= '1' && r <= '9' {
			return true
		}
	}
	return false
}

// FilterDigits strips everything but digits, for quantity-style fields.
func FilterDigits(s string) string {
	return reDigits.ReplaceAllString(s, "")
}

// eventDateLayout matches the DD-MM-YYYY format the event form accepts.
const eventDateLayout = "02-01-2006"

// ParseEventDate parses a DD-MM-YYYY date as typed into the event form.
func ParseEventDate(s string) (time.Time, bool) {
	t, err := time.Parse(eventDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidDateRange reports whether both dates parse and end is not before start.
func ValidDateRange(start, end string) bool {
	s, ok := ParseEventDate(start)
	if !ok {
		return false
	}
	e, ok := ParseEventDate(end)
	if !ok {
		return false
	}
	return !e.Before(s)
}
