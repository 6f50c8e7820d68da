package datetime

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Values holds the attributes shared by every date and time value: the
// declared precision, the time zone offset, the local time flag, and the
// memoized normalized timestamp. Format types embed Values and keep the
// native timestamp themselves.
type Values struct {
	precision      Precision
	timeZoneOffset int
	isLocalTime    bool

	normalized    decimal.Decimal
	hasNormalized bool
}

// NewValues returns a Values with the given declared precision.
func NewValues(precision Precision) Values {
	return Values{precision: precision}
}

// Precision returns the declared sub-second resolution of the format.
func (v *Values) Precision() Precision { return v.precision }

// TimeZoneOffset returns the time zone offset in minutes from UTC. Zero
// means UTC or "not specified".
func (v *Values) TimeZoneOffset() int { return v.timeZoneOffset }

// SetTimeZoneOffset replaces the time zone offset and invalidates the
// normalized timestamp.
func (v *Values) SetTimeZoneOffset(offset int) {
	v.timeZoneOffset = offset
	v.Invalidate()
}

// IsLocalTime reports whether the native timestamp is stored in local time
// rather than UTC.
func (v *Values) IsLocalTime() bool { return v.isLocalTime }

// SetIsLocalTime flags the native timestamp as local time.
func (v *Values) SetIsLocalTime(isLocal bool) { v.isLocalTime = isLocal }

// Normalized returns the memoized normalized timestamp, invoking compute on
// the first read after construction or after Invalidate. An undetermined
// result (compute reports false) is never cached.
func (v *Values) Normalized(compute func() (decimal.Decimal, bool)) (decimal.Decimal, bool) {
	if v.hasNormalized {
		return v.normalized, true
	}
	n, ok := compute()
	if !ok {
		return decimal.Decimal{}, false
	}
	v.normalized = n
	v.hasNormalized = true
	return n, true
}

// Invalidate clears the memoized normalized timestamp. Every mutation of the
// native timestamp or the time zone offset must invalidate.
func (v *Values) Invalidate() {
	v.normalized = decimal.Decimal{}
	v.hasNormalized = false
}

// pow10 maps a fraction digit count to ticks per second.
var pow10 = [...]int64{
	1, 10, 100, 1000, 10000, 100000,
	1000000, 10000000, 100000000, 1000000000,
}

// FormatDef is the constant set that parameterizes the shared engine for one
// date and time format: its registry tag, epoch, declared precision, tick
// scale, and signedness. New formats are added purely by declaring a new
// FormatDef.
type FormatDef struct {
	// Name is the registry tag of the format.
	Name string

	// Epoch is the origin of the native timestamp space.
	Epoch Epoch

	// Precision is the declared sub-second resolution.
	Precision Precision

	// FractionDigits is the number of decimal fraction digits carried per
	// second; ticks per second is 10^FractionDigits.
	FractionDigits int

	// Signed permits native timestamps before the epoch.
	Signed bool

	// Derived once by NewFormatDef.
	ticksPerSecond int64
	posixOffset    int64
	minNative      int64
	maxNative      int64
}

// NewFormatDef derives the engine constants for a format: the exact signed
// second count from the format epoch to the POSIX epoch and the native range
// covering years 1–9999.
func NewFormatDef(name string, epoch Epoch, precision Precision, fractionDigits int, signed bool) FormatDef {
	def := FormatDef{
		Name:           name,
		Epoch:          epoch,
		Precision:      precision,
		FractionDigits: fractionDigits,
		Signed:         signed,
	}
	def.ticksPerSecond = pow10[fractionDigits]
	def.posixOffset = int64(DaysSinceEpoch(epoch, PosixEpoch.Year, PosixEpoch.Month, PosixEpoch.Day)) * SecondsPerDay

	// The native range covers years 1–9999, clamped to int64 where the
	// tick scale cannot reach the full window (1 ns formats).
	minDays := int64(DaysSinceEpoch(epoch, 1, 1, 1))
	endDays := int64(DaysSinceEpoch(epoch, MaxYear, 12, 31)) + 1
	def.minNative = saturatedTicks(minDays*SecondsPerDay, def.ticksPerSecond)
	def.maxNative = saturatedTicks(endDays*SecondsPerDay, def.ticksPerSecond)
	if def.maxNative != math.MaxInt64 {
		def.maxNative--
	}
	if !def.Signed && def.minNative < 0 {
		def.minNative = 0
	}
	return def
}

// saturatedTicks multiplies a second count by ticks per second, clamping to
// the int64 range.
func saturatedTicks(seconds, ticksPerSecond int64) int64 {
	if seconds > math.MaxInt64/ticksPerSecond {
		return math.MaxInt64
	}
	if seconds < math.MinInt64/ticksPerSecond {
		return math.MinInt64
	}
	return seconds * ticksPerSecond
}

// EpochToPosixSeconds returns the exact signed second count from the format
// epoch to 1970-01-01 00:00:00.
func (d FormatDef) EpochToPosixSeconds() int64 { return d.posixOffset }

// MinTimestamp returns the smallest native timestamp representing a valid
// date.
func (d FormatDef) MinTimestamp() int64 { return d.minNative }

// MaxTimestamp returns the largest native timestamp representing a valid
// date.
func (d FormatDef) MaxTimestamp() int64 { return d.maxNative }

// contains reports whether ts falls inside the format's native range.
func (d FormatDef) contains(ts int64) bool {
	return ts >= d.minNative && ts <= d.maxNative
}

// ticksFromSeconds converts an epoch-relative second count plus a sub-second
// tick count into a native timestamp, reporting false on overflow or when
// the result falls outside the format's range.
func (d FormatDef) ticksFromSeconds(seconds, fractionTicks int64) (int64, bool) {
	if seconds < floorDiv(d.minNative, d.ticksPerSecond) ||
		seconds > floorDiv(d.maxNative, d.ticksPerSecond) {
		return 0, false
	}
	ts := seconds*d.ticksPerSecond + fractionTicks
	if ts < seconds*d.ticksPerSecond || !d.contains(ts) {
		return 0, false
	}
	return ts, true
}

// TickTime implements DateTimeValues for every format that stores an integer
// count of fixed-size ticks since a format-defined epoch. It carries all the
// normalization, parsing, and formatting logic; format types embed a
// TickTime and differ only in their FormatDef.
type TickTime struct {
	Values

	def       FormatDef
	timestamp int64
	valid     bool
}

// NewTickTime returns a TickTime without a native timestamp.
func NewTickTime(def FormatDef) TickTime {
	return TickTime{Values: NewValues(def.Precision), def: def}
}

// NewTickTimeWithTimestamp returns a TickTime holding the given native
// timestamp.
func NewTickTimeWithTimestamp(def FormatDef, timestamp int64) TickTime {
	t := NewTickTime(def)
	t.SetTimestamp(timestamp)
	return t
}

// Def returns the format's constant set.
func (t *TickTime) Def() FormatDef { return t.def }

// Tag returns the registry tag of the format.
func (t *TickTime) Tag() string { return t.def.Name }

// Timestamp returns the native timestamp and whether it has been set.
func (t *TickTime) Timestamp() (int64, bool) { return t.timestamp, t.valid }

// SetTimestamp replaces the native timestamp and invalidates the normalized
// timestamp.
func (t *TickTime) SetTimestamp(timestamp int64) {
	t.timestamp = timestamp
	t.valid = true
	t.Invalidate()
}

// NormalizedTimestamp returns the number of seconds since 1970-01-01,
// including the fractional part, as an exact decimal:
//
//	normalized = timestamp/10^digits - epochToPosixSeconds - offset*60
//
// Returns false when the native timestamp is unset.
func (t *TickTime) NormalizedTimestamp() (decimal.Decimal, bool) {
	return t.Normalized(func() (decimal.Decimal, bool) {
		if !t.valid {
			return decimal.Decimal{}, false
		}
		n := decimal.New(t.timestamp, -int32(t.def.FractionDigits))
		n = n.Sub(decimal.NewFromInt(t.def.posixOffset))
		if offset := t.TimeZoneOffset(); offset != 0 {
			n = n.Sub(decimal.NewFromInt(int64(offset) * SecondsPerMinute))
		}
		return n, true
	})
}

// CopyFromDateTimeString sets the native timestamp from a date and time
// string formatted as "YYYY-MM-DD hh:mm:ss.######[+-]##:##". The resulting
// tick count is relative to the format's own epoch; the time zone offset is
// stored, not folded in. On failure the value is left untouched.
func (t *TickTime) CopyFromDateTimeString(s string) error {
	dt, err := ParseDateTimeString(s)
	if err != nil {
		return err
	}

	days := DaysSinceEpoch(t.def.Epoch, dt.Year, dt.Month, dt.Day)
	seconds := int64(days)*SecondsPerDay + int64(SecondsOfDay(dt.Hours, dt.Minutes, dt.Seconds))

	var fraction int64
	if dt.HasFraction() {
		fraction = scaleFraction(int64(dt.Fraction), dt.FractionDigits, t.def.FractionDigits)
	}
	timestamp, ok := t.def.ticksFromSeconds(seconds, fraction)
	if !ok {
		return fmt.Errorf(
			"%w: date and time %q out of range for %s",
			ErrDateTime, s, t.def.Name,
		)
	}

	t.timestamp = timestamp
	t.valid = true
	t.timeZoneOffset = dt.TimeZoneOffset
	t.Invalidate()
	return nil
}

// CopyToDateTimeString renders the native timestamp as
// "YYYY-MM-DD hh:mm:ss[.f…]" with the fraction at the format's declared
// width, zero padded, never locale dependent. Returns false when the
// timestamp is unset or out of the format's range.
func (t *TickTime) CopyToDateTimeString() (string, bool) {
	if !t.valid || !t.def.contains(t.timestamp) {
		return "", false
	}

	seconds := floorDiv(t.timestamp, t.def.ticksPerSecond)
	remainder := floorMod(t.timestamp, t.def.ticksPerSecond)

	days, hours, minutes, secs := TimeFromSeconds(seconds)
	year, month, day := DateFromDays(t.def.Epoch, days)

	if t.def.FractionDigits == 0 {
		return fmt.Sprintf(
			"%04d-%02d-%02d %02d:%02d:%02d",
			year, month, day, hours, minutes, secs,
		), true
	}
	return fmt.Sprintf(
		"%04d-%02d-%02d %02d:%02d:%02d.%0*d",
		year, month, day, hours, minutes, secs,
		t.def.FractionDigits, remainder,
	), true
}

// CopyToDict returns the format-specific serialization fields.
func (t *TickTime) CopyToDict() map[string]any {
	if !t.valid {
		return map[string]any{}
	}
	return map[string]any{"timestamp": t.timestamp}
}

// CopyFromDict sets the native timestamp from serialization fields.
func (t *TickTime) CopyFromDict(dict map[string]any) error {
	raw, ok := dict["timestamp"]
	if !ok {
		return nil
	}
	timestamp, ok := IntValue(raw)
	if !ok {
		return fmt.Errorf("%w: invalid timestamp attribute %v", ErrDateTime, raw)
	}
	t.SetTimestamp(timestamp)
	return nil
}

// scaleFraction rescales a seconds fraction between decimal digit widths,
// truncating when the target is coarser.
func scaleFraction(fraction int64, from, to int) int64 {
	if to >= from {
		return fraction * pow10[to-from]
	}
	return fraction / pow10[from-to]
}
