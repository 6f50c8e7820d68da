package datetime

// Epoch is the calendar date at which a format's native timestamp space
// begins. Epochs are defined once per format and never mutated.
type Epoch struct {
	// Year is the epoch year, 1–9999.
	Year int

	// Month is the epoch month, 1–12.
	Month int

	// Day is the epoch day of month, 1–31.
	Day int
}

// PosixEpoch is the origin of the POSIX timestamp space,
// 1970-01-01 00:00:00.
var PosixEpoch = Epoch{Year: 1970, Month: 1, Day: 1}

// dayNumber returns the proleptic Gregorian day number of the epoch date,
// counting 0001-01-01 as day zero.
func (e Epoch) dayNumber() int {
	return dayNumber(e.Year, e.Month, e.Day)
}
