package datetime

// Calendar arithmetic over the proleptic Gregorian calendar. The standard
// leap year rule applies uniformly across years 1–9999 with no
// Julian/Gregorian cutover. Callers pass already-range-checked elements;
// calendrical legality is validated at the parse boundary, not here.

const (
	// SecondsPerDay is the number of seconds in a day (excluding leap
	// seconds).
	SecondsPerDay = 24 * 60 * 60

	// SecondsPerHour is the number of seconds in an hour.
	SecondsPerHour = 60 * 60

	// SecondsPerMinute is the number of seconds in a minute.
	SecondsPerMinute = 60

	// MaxYear is the largest year supported by the calendar arithmetic.
	MaxYear = 9999
)

// daysPerMonth holds the number of days in each month of a common year.
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year: divisible by 4, not by
// 100, unless by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1–12) of year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// daysBeforeYear returns the number of days in years [1, year).
func daysBeforeYear(year int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400
}

// dayOfYear returns the ordinal day of the year, 1–366.
func dayOfYear(year, month, day int) int {
	days := day
	for m := 1; m < month; m++ {
		days += DaysInMonth(year, m)
	}
	return days
}

// dayNumber returns the proleptic Gregorian day number of a date, counting
// 0001-01-01 as day zero.
func dayNumber(year, month, day int) int {
	return daysBeforeYear(year) + dayOfYear(year, month, day) - 1
}

// DaysSinceEpoch returns the signed number of days from the epoch date to
// the given date.
func DaysSinceEpoch(epoch Epoch, year, month, day int) int {
	return dayNumber(year, month, day) - epoch.dayNumber()
}

// DateFromDays returns the date dayCount days from the epoch date. It is the
// exact inverse of DaysSinceEpoch for every date in years 1–9999.
func DateFromDays(epoch Epoch, dayCount int) (year, month, day int) {
	n := epoch.dayNumber() + dayCount

	// 146097 days per 400-year cycle; the estimate is at most one off.
	year = n*400/146097 + 1
	for year > 1 && daysBeforeYear(year) > n {
		year--
	}
	for year < MaxYear && daysBeforeYear(year+1) <= n {
		year++
	}

	n -= daysBeforeYear(year)
	month = 1
	for days := DaysInMonth(year, month); n >= days; days = DaysInMonth(year, month) {
		n -= days
		month++
	}
	return year, month, n + 1
}

// SecondsOfDay returns the number of seconds from midnight to the given time
// of day.
func SecondsOfDay(hours, minutes, seconds int) int {
	return hours*SecondsPerHour + minutes*SecondsPerMinute + seconds
}

// TimeFromSeconds splits a second count into whole days and a time of day.
// Counts past 24h roll over into the day count, which callers feed to
// DateFromDays; this absorbs overflow introduced by fractional additions
// during parsing.
func TimeFromSeconds(totalSeconds int64) (days int, hours, minutes, seconds int) {
	d := floorDiv(totalSeconds, SecondsPerDay)
	rem := int(totalSeconds - d*SecondsPerDay)
	return int(d), rem / SecondsPerHour, (rem / SecondsPerMinute) % 60, rem % 60
}

// floorDiv divides a by b rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv; it is always in [0, b).
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
