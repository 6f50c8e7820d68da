package datetime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDef is the constant set of a 100 nanosecond tick, year one epoch
// format, the representative case for the shared engine.
var testDef = NewFormatDef(
	"TestTickTime",
	Epoch{Year: 1, Month: 1, Day: 1},
	Precision100Nanoseconds,
	7,
	false,
)

func TestNewFormatDef(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// The exact second count between the epoch and 1970-01-01, verified by
	// independent calendar computation.
	a.Equal(int64(719162*SecondsPerDay), testDef.EpochToPosixSeconds())
	a.Equal(int64(62135596800), testDef.EpochToPosixSeconds())

	a.Equal(int64(0), testDef.MinTimestamp())
	a.Equal(int64(3155378975999999999), testDef.MaxTimestamp())

	posixDef := NewFormatDef("TestPosix", PosixEpoch, Precision1Second, 0, true)
	a.Equal(int64(0), posixDef.EpochToPosixSeconds())
	a.Negative(posixDef.MinTimestamp())
	a.Equal(int64(-719162*SecondsPerDay), posixDef.MinTimestamp())

	// Nanosecond scale cannot reach year 9999; the range clamps to int64.
	nanoDef := NewFormatDef("TestNano", PosixEpoch, Precision1Nanosecond, 9, true)
	a.Equal(int64(-1<<63), nanoDef.MinTimestamp())
	a.Equal(int64(1<<63-1), nanoDef.MaxTimestamp())
}

func TestTickTimeNormalizedTimestamp(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// 2010-08-12 20:06:31 in 100 nanosecond ticks since year one.
	tt := NewTickTimeWithTimestamp(testDef, 634172403910000000)
	n, ok := tt.NormalizedTimestamp()
	a.True(ok)
	a.True(n.Equal(decimal.NewFromInt(1281643591)), "got %s", n)

	// A sub-second remainder becomes the decimal fraction.
	tt = NewTickTimeWithTimestamp(testDef, 634172403914298765)
	n, ok = tt.NormalizedTimestamp()
	a.True(ok)
	a.True(n.Equal(decimal.RequireFromString("1281643591.4298765")), "got %s", n)

	// A time zone offset shifts the normalized value.
	tt.SetTimeZoneOffset(60)
	n, ok = tt.NormalizedTimestamp()
	a.True(ok)
	a.True(n.Equal(decimal.RequireFromString("1281639991.4298765")), "got %s", n)

	// No timestamp, no normalized value.
	tt = NewTickTime(testDef)
	_, ok = tt.NormalizedTimestamp()
	a.False(ok)
}

func TestTickTimeNormalizedTimestampCache(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	tt := NewTickTimeWithTimestamp(testDef, 634172403910000000)
	first, ok := tt.NormalizedTimestamp()
	a.True(ok)

	// A successful parse invalidates the cache.
	r.NoError(tt.CopyFromDateTimeString("2010-08-12 21:06:31.0000000"))
	second, ok := tt.NormalizedTimestamp()
	a.True(ok)
	a.True(second.Sub(first).Equal(decimal.NewFromInt(3600)), "got %s", second)

	// So does replacing the timestamp.
	tt.SetTimestamp(634172403910000000)
	third, ok := tt.NormalizedTimestamp()
	a.True(ok)
	a.True(third.Equal(first))

	// And mutating the time zone offset.
	tt.SetTimeZoneOffset(-30)
	fourth, ok := tt.NormalizedTimestamp()
	a.True(ok)
	a.True(fourth.Sub(first).Equal(decimal.NewFromInt(1800)), "got %s", fourth)

	// A failed parse leaves the prior state untouched.
	r.Error(tt.CopyFromDateTimeString("not a date"))
	ts, ok := tt.Timestamp()
	a.True(ok)
	a.Equal(int64(634172403910000000), ts)
	a.Equal(-30, tt.TimeZoneOffset())
}

func TestTickTimeNormalizedTimestampMonotonic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	previous := decimal.NewFromInt(-1 << 62)
	for _, ts := range []int64{
		0, 1, 9999999, 10000000, 634172403910000000,
		testDef.MaxTimestamp() - 1, testDef.MaxTimestamp(),
	} {
		tt := NewTickTimeWithTimestamp(testDef, ts)
		n, ok := tt.NormalizedTimestamp()
		a.True(ok)
		a.Positive(n.Cmp(previous), "timestamp %d", ts)
		previous = n
	}
}

func TestTickTimeCopyFromDateTimeString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		str    string
		exp    int64
		offset int
	}{
		{"epoch", "0001-01-01 00:00:00", 0, 0},
		{"date only", "0001-01-02", 864000000000, 0},
		{"whole second", "2010-08-12 20:06:31", 634172403910000000, 0},
		{"milliseconds", "2010-08-12 20:06:31.546", 634172403915460000, 0},
		{"microseconds", "2010-08-12 20:06:31.429876", 634172403914298760, 0},
		{"full width", "2010-08-12 20:06:31.4298765", 634172403914298765, 0},
		{"nanoseconds truncate", "2010-08-12 20:06:31.429876591", 634172403914298765, 0},
		{"with offset", "2010-08-12 20:06:31+02:00", 634172403910000000, 120},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			tt := NewTickTime(testDef)
			require.NoError(t, tt.CopyFromDateTimeString(tc.str))
			ts, ok := tt.Timestamp()
			a.True(ok)
			a.Equal(tc.exp, ts)
			a.Equal(tc.offset, tt.TimeZoneOffset())
		})
	}
}

func TestTickTimeCopyFromDateTimeStringErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		str  string
		err  error
	}{
		{"malformed", "12 Aug 2010", ErrParse},
		{"five digit year", "10000-01-01 00:00:00", ErrParse},
		{"before unsigned epoch", "0001-01-01 00:00:00", ErrDateTime},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// A format with an epoch after year one rejects earlier dates.
			def := NewFormatDef(
				"TestFiletime", Epoch{Year: 1601, Month: 1, Day: 1},
				Precision100Nanoseconds, 7, false,
			)
			tt := NewTickTime(def)
			err := tt.CopyFromDateTimeString(tc.str)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.err)

			// Nothing was written.
			_, ok := tt.Timestamp()
			assert.False(t, ok)
		})
	}
}

func TestTickTimeCopyToDateTimeString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, tc := range []struct {
		name string
		ts   int64
		exp  string
	}{
		{"epoch", 0, "0001-01-01 00:00:00.0000000"},
		{"one tick", 1, "0001-01-01 00:00:00.0000001"},
		{"whole second", 634172403910000000, "2010-08-12 20:06:31.0000000"},
		{"fraction", 634172403914298765, "2010-08-12 20:06:31.4298765"},
		{"max", testDef.MaxTimestamp(), "9999-12-31 23:59:59.9999999"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tt := NewTickTimeWithTimestamp(testDef, tc.ts)
			s, ok := tt.CopyToDateTimeString()
			assert.True(t, ok)
			assert.Equal(t, tc.exp, s)
		})
	}

	// Out of range values degrade to no value, never an error.
	for name, ts := range map[string]int64{
		"negative":  -1,
		"max plus1": testDef.MaxTimestamp() + 1,
	} {
		tt := NewTickTimeWithTimestamp(testDef, ts)
		_, ok := tt.CopyToDateTimeString()
		a.False(ok, name)
	}

	// So does an unset timestamp.
	tt := NewTickTime(testDef)
	_, ok := tt.CopyToDateTimeString()
	a.False(ok)
}

func TestTickTimeRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, ts := range []int64{
		0, 1, 9999999, 634172403914298765, testDef.MaxTimestamp(),
	} {
		tt := NewTickTimeWithTimestamp(testDef, ts)
		s, ok := tt.CopyToDateTimeString()
		r.True(ok)

		parsed := NewTickTime(testDef)
		r.NoError(parsed.CopyFromDateTimeString(s))
		got, ok := parsed.Timestamp()
		a.True(ok)
		a.Equal(ts, got, "string %s", s)
	}
}

func TestTickTimeDict(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	tt := NewTickTimeWithTimestamp(testDef, 634172403910000000)
	a.Equal("TestTickTime", tt.Tag())
	a.Equal(map[string]any{"timestamp": int64(634172403910000000)}, tt.CopyToDict())

	empty := NewTickTime(testDef)
	a.Empty(empty.CopyToDict())

	r.NoError(empty.CopyFromDict(map[string]any{"timestamp": int64(634172403910000000)}))
	ts, ok := empty.Timestamp()
	a.True(ok)
	a.Equal(int64(634172403910000000), ts)

	r.Error(empty.CopyFromDict(map[string]any{"timestamp": "not a number"}))
	r.NoError(empty.CopyFromDict(map[string]any{}))
}

func TestValuesPrecision(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	tt := NewTickTime(testDef)
	a.Equal(Precision100Nanoseconds, tt.Precision())
	a.False(tt.IsLocalTime())

	tt.SetIsLocalTime(true)
	a.True(tt.IsLocalTime())
}
