// Package datetime normalizes the many on-disk and on-wire timestamp
// encodings found in forensic artifacts (signed or unsigned tick counts
// since differing epochs, at differing sub-second resolutions, with or
// without a time zone offset) into a single internal representation.
//
// Every format reduces to the same arithmetic: an [Epoch] fixes the origin of
// the native timestamp space, proleptic Gregorian calendar arithmetic
// converts between calendar elements and day counts across years 1–9999, and
// a shared engine derives an exact decimal number of seconds since the POSIX
// epoch. Concrete formats live in the formats subpackage and differ only in
// their constant sets.
package datetime

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrDateTime wraps errors returned by the datetime package.
	ErrDateTime = errors.New("datetime")

	// ErrParse wraps date and time string parsing errors.
	ErrParse = errors.New("parse")
)

// Precision identifies the sub-second resolution declared by a date and time
// format.
type Precision string

//revive:disable:exported
const (
	Precision1Day            Precision = "1d"
	Precision2Seconds        Precision = "2s"
	Precision1Second         Precision = "1s"
	Precision100Milliseconds Precision = "100ms"
	Precision10Milliseconds  Precision = "10ms"
	Precision1Millisecond    Precision = "1ms"
	Precision1Microsecond    Precision = "1us"
	Precision100Nanoseconds  Precision = "100ns"
	Precision1Nanosecond     Precision = "1ns"
	PrecisionUndefined       Precision = ""
)

// DateTimeValues defines the interface for all date and time values. A value
// holds a format-native timestamp, a declared sub-second precision, and an
// optional time zone offset, and converts to and from the canonical string
// form "YYYY-MM-DD hh:mm:ss.######".
type DateTimeValues interface {
	// Precision returns the declared sub-second resolution of the format.
	Precision() Precision

	// TimeZoneOffset returns the time zone offset in minutes from UTC.
	// Zero means UTC or "not specified".
	TimeZoneOffset() int

	// SetTimeZoneOffset replaces the time zone offset and invalidates the
	// normalized timestamp.
	SetTimeZoneOffset(offset int)

	// IsLocalTime reports whether the native timestamp is stored in local
	// time rather than UTC.
	IsLocalTime() bool

	// SetIsLocalTime flags the native timestamp as local time.
	SetIsLocalTime(isLocal bool)

	// NormalizedTimestamp returns the number of seconds since
	// 1970-01-01 00:00:00, including a fractional part, as an exact
	// decimal. Returns false when the value cannot be determined.
	NormalizedTimestamp() (decimal.Decimal, bool)

	// CopyFromDateTimeString sets the value from a string formatted as
	// "YYYY-MM-DD hh:mm:ss.######[+-]##:##", where the time of day,
	// seconds fraction, and time zone offset are optional. On failure the
	// value is left untouched.
	CopyFromDateTimeString(s string) error

	// CopyToDateTimeString renders the value in the canonical string form
	// at the format's declared fraction width. Returns false when the
	// native timestamp is unset or out of the format's range.
	CopyToDateTimeString() (string, bool)
}
