package formats

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theory/dtnorm/datetime"
)

// timeElements holds a date and time as discrete calendar elements at a
// fixed fraction width, rather than as a tick count. It backs TimeElements
// and its millisecond and microsecond variants.
type timeElements struct {
	datetime.Values

	tag            string
	fractionDigits int

	year, month, day        int
	hours, minutes, seconds int
	fraction                int
	valid                   bool
}

func newTimeElements(tag string, precision datetime.Precision, fractionDigits int) timeElements {
	return timeElements{
		Values:         datetime.NewValues(precision),
		tag:            tag,
		fractionDigits: fractionDigits,
	}
}

// Tag returns the registry tag of the format.
func (te *timeElements) Tag() string { return te.tag }

// Tuple returns the time elements tuple: (year, month, day, hours, minutes,
// seconds) followed by the fraction for sub-second variants. Returns false
// when the elements are unset.
func (te *timeElements) Tuple() ([]int, bool) {
	if !te.valid {
		return nil, false
	}
	tuple := []int{te.year, te.month, te.day, te.hours, te.minutes, te.seconds}
	if te.fractionDigits > 0 {
		tuple = append(tuple, te.fraction)
	}
	return tuple, true
}

// setTuple validates and stores a time elements tuple.
func (te *timeElements) setTuple(tuple []int) error {
	size := 6
	if te.fractionDigits > 0 {
		size = 7
	}
	if len(tuple) != size {
		return fmt.Errorf(
			"%w: invalid time elements tuple %d values expected",
			datetime.ErrDateTime, size,
		)
	}

	year, month, day := tuple[0], tuple[1], tuple[2]
	hours, minutes, seconds := tuple[3], tuple[4], tuple[5]
	switch {
	case year < 1 || year > datetime.MaxYear:
		return fmt.Errorf("%w: year value out of bounds: %d", datetime.ErrDateTime, year)
	case month < 1 || month > 12:
		return fmt.Errorf("%w: month value out of bounds: %d", datetime.ErrDateTime, month)
	case day < 1 || day > datetime.DaysInMonth(year, month):
		return fmt.Errorf("%w: day of month value out of bounds: %d", datetime.ErrDateTime, day)
	case hours < 0 || hours > 23:
		return fmt.Errorf("%w: hours value out of bounds: %d", datetime.ErrDateTime, hours)
	case minutes < 0 || minutes > 59:
		return fmt.Errorf("%w: minutes value out of bounds: %d", datetime.ErrDateTime, minutes)
	case seconds < 0 || seconds > 59:
		return fmt.Errorf("%w: seconds value out of bounds: %d", datetime.ErrDateTime, seconds)
	}

	fraction := 0
	if te.fractionDigits > 0 {
		fraction = tuple[6]
		if fraction < 0 || int64(fraction) >= pow10(te.fractionDigits) {
			return fmt.Errorf(
				"%w: seconds fraction value out of bounds: %d",
				datetime.ErrDateTime, fraction,
			)
		}
	}

	te.year, te.month, te.day = year, month, day
	te.hours, te.minutes, te.seconds = hours, minutes, seconds
	te.fraction = fraction
	te.valid = true
	te.Invalidate()
	return nil
}

// NormalizedTimestamp returns the number of seconds since 1970-01-01 as an
// exact decimal, or false when the elements are unset.
func (te *timeElements) NormalizedTimestamp() (decimal.Decimal, bool) {
	return te.Normalized(func() (decimal.Decimal, bool) {
		if !te.valid {
			return decimal.Decimal{}, false
		}
		days := datetime.DaysSinceEpoch(datetime.PosixEpoch, te.year, te.month, te.day)
		seconds := int64(days)*datetime.SecondsPerDay +
			int64(datetime.SecondsOfDay(te.hours, te.minutes, te.seconds))

		n := decimal.NewFromInt(seconds)
		if te.fractionDigits > 0 {
			n = n.Add(decimal.New(int64(te.fraction), -int32(te.fractionDigits)))
		}
		if offset := te.TimeZoneOffset(); offset != 0 {
			n = n.Sub(decimal.NewFromInt(int64(offset) * datetime.SecondsPerMinute))
		}
		return n, true
	})
}

// CopyFromDateTimeString sets the time elements from a date and time string
// formatted as "YYYY-MM-DD hh:mm:ss.######[+-]##:##". On failure the value
// is left untouched.
func (te *timeElements) CopyFromDateTimeString(s string) error {
	dt, err := datetime.ParseDateTimeString(s)
	if err != nil {
		return err
	}

	fraction := 0
	if te.fractionDigits > 0 && dt.HasFraction() {
		microseconds := dt.Microseconds()
		switch {
		case te.fractionDigits >= 6:
			fraction = microseconds * int(pow10(te.fractionDigits-6))
		default:
			fraction = microseconds / int(pow10(6-te.fractionDigits))
		}
	}

	te.year, te.month, te.day = dt.Year, dt.Month, dt.Day
	te.hours, te.minutes, te.seconds = dt.Hours, dt.Minutes, dt.Seconds
	te.fraction = fraction
	te.valid = true
	te.SetTimeZoneOffset(dt.TimeZoneOffset)
	return nil
}

// CopyToDateTimeString renders the time elements as
// "YYYY-MM-DD hh:mm:ss[.f…]" with the fraction at the format's declared
// width. Returns false when the elements are unset.
func (te *timeElements) CopyToDateTimeString() (string, bool) {
	if !te.valid {
		return "", false
	}
	if te.fractionDigits == 0 {
		return fmt.Sprintf(
			"%04d-%02d-%02d %02d:%02d:%02d",
			te.year, te.month, te.day, te.hours, te.minutes, te.seconds,
		), true
	}
	return fmt.Sprintf(
		"%04d-%02d-%02d %02d:%02d:%02d.%0*d",
		te.year, te.month, te.day, te.hours, te.minutes, te.seconds,
		te.fractionDigits, te.fraction,
	), true
}

// CopyToDict returns the format-specific serialization fields.
func (te *timeElements) CopyToDict() map[string]any {
	tuple, ok := te.Tuple()
	if !ok {
		return map[string]any{}
	}
	return map[string]any{"time_elements_tuple": tuple}
}

// CopyFromDict sets the time elements from serialization fields.
func (te *timeElements) CopyFromDict(dict map[string]any) error {
	raw, ok := dict["time_elements_tuple"]
	if !ok {
		return nil
	}
	tuple, ok := datetime.IntSlice(raw)
	if !ok {
		return fmt.Errorf(
			"%w: invalid time_elements_tuple attribute %v",
			datetime.ErrDateTime, raw,
		)
	}
	return te.setTuple(tuple)
}

// pow10 returns 10^n for small n.
func pow10(n int) int64 {
	value := int64(1)
	for ; n > 0; n-- {
		value *= 10
	}
	return value
}

// TimeElements is a date and time stored as a (year, month, day, hours,
// minutes, seconds) tuple.
type TimeElements struct {
	timeElements
}

// NewTimeElements returns a TimeElements from a 6-value tuple.
func NewTimeElements(tuple []int) (*TimeElements, error) {
	te := &TimeElements{newTimeElements(
		"TimeElements", datetime.Precision1Second, 0,
	)}
	if err := te.setTuple(tuple); err != nil {
		return nil, err
	}
	return te, nil
}

// TimeElementsInMilliseconds is a date and time stored as a (year, month,
// day, hours, minutes, seconds, milliseconds) tuple.
type TimeElementsInMilliseconds struct {
	timeElements
}

// NewTimeElementsInMilliseconds returns a TimeElementsInMilliseconds from a
// 7-value tuple.
func NewTimeElementsInMilliseconds(tuple []int) (*TimeElementsInMilliseconds, error) {
	te := &TimeElementsInMilliseconds{newTimeElements(
		"TimeElementsInMilliseconds", datetime.Precision1Millisecond, 3,
	)}
	if err := te.setTuple(tuple); err != nil {
		return nil, err
	}
	return te, nil
}

// TimeElementsInMicroseconds is a date and time stored as a (year, month,
// day, hours, minutes, seconds, microseconds) tuple.
type TimeElementsInMicroseconds struct {
	timeElements
}

// NewTimeElementsInMicroseconds returns a TimeElementsInMicroseconds from a
// 7-value tuple.
func NewTimeElementsInMicroseconds(tuple []int) (*TimeElementsInMicroseconds, error) {
	te := &TimeElementsInMicroseconds{newTimeElements(
		"TimeElementsInMicroseconds", datetime.Precision1Microsecond, 6,
	)}
	if err := te.setTuple(tuple); err != nil {
		return nil, err
	}
	return te, nil
}

func init() {
	datetime.Register("TimeElements", func() datetime.DateTimeValues {
		return &TimeElements{newTimeElements(
			"TimeElements", datetime.Precision1Second, 0,
		)}
	})
	datetime.Register("TimeElementsInMilliseconds", func() datetime.DateTimeValues {
		return &TimeElementsInMilliseconds{newTimeElements(
			"TimeElementsInMilliseconds", datetime.Precision1Millisecond, 3,
		)}
	})
	datetime.Register("TimeElementsInMicroseconds", func() datetime.DateTimeValues {
		return &TimeElementsInMicroseconds{newTimeElements(
			"TimeElementsInMicroseconds", datetime.Precision1Microsecond, 6,
		)}
	})
}
