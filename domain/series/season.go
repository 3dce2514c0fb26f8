package series

import (
	"time"
)

// InSpring reports whether t falls inside the spring window of the Dutch
// groundwater-regime convention, 14 March through 14 April inclusive.
func InSpring(t time.Time) bool {
	switch t.Month() {
	case time.March:
		return t.Day() >= 14
	case time.April:
		return t.Day() < 15
	default:
		return false
	}
}

// Is14or28 reports whether t lands on one of the two classic groundwater
// sampling days, the 14th or 28th of any month.
func Is14or28(t time.Time) bool {
	return t.Day() == 14 || t.Day() == 28
}
