package formats

import (
	"fmt"

	"github.com/theory/dtnorm/datetime"
)

// RFC2579Tuple is the 10-field DateAndTime value defined by RFC 2579:
// calendar elements, deciseconds, and a time zone offset with an explicit
// direction.
type RFC2579Tuple struct {
	Year, Month, Day        int
	Hours, Minutes, Seconds int
	Deciseconds             int

	// Direction is "+" or "-", the sign of the offset from UTC.
	Direction                  string
	OffsetHours, OffsetMinutes int
}

// RFC2579DateTime is a date and time stored as an RFC 2579 DateAndTime
// tuple, with 100 millisecond precision.
type RFC2579DateTime struct {
	timeElements
}

// newRFC2579DateTime returns an empty RFC2579DateTime.
func newRFC2579DateTime() *RFC2579DateTime {
	return &RFC2579DateTime{newTimeElements(
		"RFC2579DateTime", datetime.Precision100Milliseconds, 1,
	)}
}

// NewRFC2579DateTime returns an RFC2579DateTime from tuple.
func NewRFC2579DateTime(tuple RFC2579Tuple) (*RFC2579DateTime, error) {
	if tuple.Direction != "+" && tuple.Direction != "-" {
		return nil, fmt.Errorf(
			"%w: invalid direction value %q", datetime.ErrDateTime, tuple.Direction,
		)
	}
	if tuple.OffsetHours < 0 || tuple.OffsetHours > 14 {
		return nil, fmt.Errorf(
			"%w: time zone offset hours value out of bounds: %d",
			datetime.ErrDateTime, tuple.OffsetHours,
		)
	}
	if tuple.OffsetMinutes < 0 || tuple.OffsetMinutes > 59 {
		return nil, fmt.Errorf(
			"%w: time zone offset minutes value out of bounds: %d",
			datetime.ErrDateTime, tuple.OffsetMinutes,
		)
	}

	rdt := newRFC2579DateTime()
	err := rdt.setTuple([]int{
		tuple.Year, tuple.Month, tuple.Day,
		tuple.Hours, tuple.Minutes, tuple.Seconds, tuple.Deciseconds,
	})
	if err != nil {
		return nil, err
	}

	offset := tuple.OffsetHours*60 + tuple.OffsetMinutes
	if tuple.Direction == "-" {
		offset = -offset
	}
	rdt.SetTimeZoneOffset(offset)
	return rdt, nil
}

// CopyToDict returns the format-specific serialization fields: the 7-value
// (year, month, day, hours, minutes, seconds, deciseconds) tuple.
func (rdt *RFC2579DateTime) CopyToDict() map[string]any {
	tuple, ok := rdt.Tuple()
	if !ok {
		return map[string]any{}
	}
	return map[string]any{"rfc2579_date_time_tuple": tuple}
}

// CopyFromDict sets the date and time from serialization fields.
func (rdt *RFC2579DateTime) CopyFromDict(dict map[string]any) error {
	raw, ok := dict["rfc2579_date_time_tuple"]
	if !ok {
		return nil
	}
	tuple, ok := datetime.IntSlice(raw)
	if !ok {
		return fmt.Errorf(
			"%w: invalid rfc2579_date_time_tuple attribute %v",
			datetime.ErrDateTime, raw,
		)
	}
	return rdt.setTuple(tuple)
}

func init() {
	datetime.Register("RFC2579DateTime", func() datetime.DateTimeValues {
		return newRFC2579DateTime()
	})
}
