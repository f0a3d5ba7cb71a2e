package ident

import (
	"strconv"
	"time"

	"github.com/logbob0401/libyang/yerr"
)

// ValidateDate checks that date is exactly 10 bytes matching
// "DDDD-DD-DD" and parses as a real Gregorian date.
//
// The textual shape is checked byte-by-byte first, catching the common
// "wrong length" or "wrong separator" mistakes before the calendar
// check runs, so the error message can distinguish those from "not a
// real date" (e.g. 2018-02-29).
func ValidateDate(date string) error {
	if len(date) != 10 {
		return yerr.InvalidInputf(yerr.WithMessage("date must be exactly 10 bytes (YYYY-MM-DD)"))
	}
	for i := 0; i < 10; i++ {
		switch i {
		case 4, 7:
			if date[i] != '-' {
				return yerr.InvalidInputf(yerr.WithMessagef("expected '-' at position %d", i))
			}
		default:
			if date[i] < '0' || date[i] > '9' {
				return yerr.InvalidInputf(yerr.WithMessagef("expected digit at position %d", i))
			}
		}
	}

	year, _ := strconv.Atoi(date[0:4])
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (e.g. Feb 29 on a
	// non-leap year rolls to March 1); comparing the normalized fields
	// back to what was requested catches that roll-over.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return yerr.InvalidInputf(yerr.WithMessagef("%q is not a valid Gregorian date", date))
	}
	return nil
}
