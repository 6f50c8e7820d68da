package datetime

import "fmt"

// DateTimeString holds the components parsed from a canonical date and time
// string. Optional components default to zero.
type DateTimeString struct {
	Year    int
	Month   int
	Day     int
	Hours   int
	Minutes int
	Seconds int

	// Fraction is the seconds fraction as parsed, in units of
	// 10^-FractionDigits seconds. Zero FractionDigits means no fraction.
	Fraction       int
	FractionDigits int

	// TimeZoneOffset is the parsed offset in minutes from UTC, signed.
	TimeZoneOffset int
}

// HasFraction reports whether the string carried a seconds fraction.
func (dt DateTimeString) HasFraction() bool { return dt.FractionDigits > 0 }

// Microseconds returns the seconds fraction scaled to microseconds,
// truncating below microsecond resolution.
func (dt DateTimeString) Microseconds() int {
	return int(scaleFraction(int64(dt.Fraction), dt.FractionDigits, 6))
}

// ParseDateTimeString parses a date and time string formatted as:
//
//	YYYY-MM-DD hh:mm:ss.######[+-]##:##
//
// where the time of day, seconds fraction, and time zone offset are
// optional. The fraction is 3 digits (milliseconds) or 6 digits
// (microseconds), plus the widths the formats themselves produce: 7
// (100 nanoseconds) and 9 (nanoseconds). Other widths are rejected. Returns
// an error wrapping [ErrParse] when the string does not match the grammar or
// a component is out of range.
func ParseDateTimeString(s string) (DateTimeString, error) {
	var dt DateTimeString

	if len(s) < 10 {
		return dt, fmt.Errorf("%w: date and time string too short: %q", ErrParse, s)
	}
	if s[4] != '-' || s[7] != '-' {
		return dt, fmt.Errorf("%w: invalid date separators in %q", ErrParse, s)
	}

	year, ok1 := digits(s[0:4])
	month, ok2 := digits(s[5:7])
	day, ok3 := digits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return dt, fmt.Errorf("%w: invalid date in %q", ErrParse, s)
	}
	if year < 1 {
		return dt, fmt.Errorf("%w: unsupported year value: %d", ErrParse, year)
	}
	if month < 1 || month > 12 {
		return dt, fmt.Errorf("%w: month value out of bounds in %q", ErrParse, s)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return dt, fmt.Errorf("%w: day of month value out of bounds in %q", ErrParse, s)
	}
	dt.Year, dt.Month, dt.Day = year, month, day

	if len(s) == 10 {
		return dt, nil
	}
	if len(s) < 19 || s[10] != ' ' || s[13] != ':' || s[16] != ':' {
		return dt, fmt.Errorf("%w: invalid time separators in %q", ErrParse, s)
	}

	hours, ok1 := digits(s[11:13])
	minutes, ok2 := digits(s[14:16])
	seconds, ok3 := digits(s[17:19])
	if !ok1 || !ok2 || !ok3 {
		return dt, fmt.Errorf("%w: invalid time of day in %q", ErrParse, s)
	}
	if hours > 23 {
		return dt, fmt.Errorf("%w: hours value out of bounds in %q", ErrParse, s)
	}
	if minutes > 59 {
		return dt, fmt.Errorf("%w: minutes value out of bounds in %q", ErrParse, s)
	}
	if seconds > 59 {
		return dt, fmt.Errorf("%w: seconds value out of bounds in %q", ErrParse, s)
	}
	dt.Hours, dt.Minutes, dt.Seconds = hours, minutes, seconds

	rest := s[19:]
	if len(rest) > 0 && rest[0] == '.' {
		end := len(rest)
		if i := indexSign(rest); i > 0 {
			end = i
		}
		fraction := rest[1:end]
		value, ok := digits(fraction)
		if !ok {
			return dt, fmt.Errorf("%w: invalid seconds fraction in %q", ErrParse, s)
		}
		switch len(fraction) {
		case 3, 6, 7, 9:
			dt.Fraction = value
			dt.FractionDigits = len(fraction)
		default:
			return dt, fmt.Errorf(
				"%w: unsupported seconds fraction width %d in %q",
				ErrParse, len(fraction), s,
			)
		}
		rest = rest[end:]
	}

	if len(rest) == 0 {
		return dt, nil
	}
	if len(rest) != 6 || (rest[0] != '+' && rest[0] != '-') || rest[3] != ':' {
		return dt, fmt.Errorf("%w: invalid time zone offset in %q", ErrParse, s)
	}
	offsetHours, ok1 := digits(rest[1:3])
	offsetMinutes, ok2 := digits(rest[4:6])
	if !ok1 || !ok2 {
		return dt, fmt.Errorf("%w: invalid time zone offset in %q", ErrParse, s)
	}
	if offsetHours > 14 {
		return dt, fmt.Errorf("%w: time zone offset hours out of bounds in %q", ErrParse, s)
	}
	if offsetMinutes > 59 {
		return dt, fmt.Errorf("%w: time zone offset minutes out of bounds in %q", ErrParse, s)
	}
	dt.TimeZoneOffset = offsetHours*60 + offsetMinutes
	if rest[0] == '-' {
		dt.TimeZoneOffset = -dt.TimeZoneOffset
	}
	return dt, nil
}

// digits converts a string of ASCII decimal digits. Returns false if s is
// empty or contains any other character.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	value := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		value = value*10 + int(c-'0')
	}
	return value, true
}

// indexSign returns the index of the first '+' or '-' in s, or -1.
func indexSign(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '+' || s[i] == '-' {
			return i
		}
	}
	return -1
}
