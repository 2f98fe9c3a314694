// Package validate holds the synchronous form checks the page controllers
// run before any network call. All failing fields are reported together so
// every error can be rendered at once.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldErrors maps a field name to its user-visible message.
type FieldErrors map[string]string

func (fe FieldErrors) Ok() bool { return len(fe) == 0 }

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "valid"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	return fmt.Sprintf("%d invalid field(s): %s", len(fe), strings.Join(fields, ", "))
}

const (
	MinNameLen     = 2
	MinPasswordLen = 8
	MinZipLen      = 5
)

// Permissive shape check: something@something.something.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	digitsRe = regexp.MustCompile(`^\d+$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

func Email(v string) bool { return emailRe.MatchString(v) }

// CardNumber accepts 13-19 digits (spaces already stripped by the caller).
func CardNumber(v string) bool {
	return digitsRe.MatchString(v) && len(v) >= 13 && len(v) <= 19
}

// CVV accepts 3 or 4 digits.
func CVV(v string) bool {
	return digitsRe.MatchString(v) && (len(v) == 3 || len(v) == 4)
}

// expiryYearWindow bounds how far ahead a two-digit expiry year may land.
// Card networks issue at most ~10 years out, so anything further is read as
// the previous century and therefore expired ("99" -> 1999, not 2099).
const expiryYearWindow = 20

// Expiry checks MM/YY shape and rejects cards whose year-month is before
// now's year-month; a card expiring this month is still valid.
func Expiry(v string, now time.Time) (ok, expired bool) {
	if !expiryRe.MatchString(v) {
		return false, false
	}
	month, _ := strconv.Atoi(v[:2])
	yy, _ := strconv.Atoi(v[3:])
	year := 2000 + yy
	if year > now.Year()+expiryYearWindow {
		year -= 100
	}
	if year < now.Year() || (year == now.Year() && time.Month(month) < now.Month()) {
		return true, true
	}
	return true, false
}
