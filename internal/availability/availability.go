// Package availability decides whether a candidate stay fits into a
// property's existing bookings. It is pure interval logic with no storage or
// clock dependency; the database's exclusion constraint enforces the same rule
// as a last line of defense.
package availability

import "time"

// Range is a booked stay, inclusive of both end days: a guest checking out on
// a given date still occupies the property that night, so back-to-back
// bookings sharing a day conflict.
type Range struct {
	ID       int64
	CheckIn  time.Time
	CheckOut time.Time
}

// Overlaps reports whether two closed date ranges share at least one calendar
// day.
func Overlaps(a, b Range) bool {
	return !a.CheckIn.After(b.CheckOut) && !b.CheckIn.After(a.CheckOut)
}

// IsAvailable reports whether candidate overlaps none of existing. excludeID
// skips the candidate's own stored range when re-checking an amendment; pass
// zero when creating.
func IsAvailable(existing []Range, candidate Range, excludeID int64) bool {
	for _, r := range existing {
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if Overlaps(r, candidate) {
			return false
		}
	}
	return true
}
