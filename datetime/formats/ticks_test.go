package formats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/dtnorm/datetime"
)

// All tick formats agree on the instant 2010-08-12 20:06:31, POSIX
// timestamp 1281643591, each in its own native unit and epoch.
func TestTickFormatConstants(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		tag       string
		timestamp int64
		offset    int64
		precision datetime.Precision
	}{
		{"Filetime", 129261171910000000, 11644473600, datetime.Precision100Nanoseconds},
		{"WebKitTime", 12926117191000000, 11644473600, datetime.Precision1Microsecond},
		{"JavaTime", 1281643591000, 0, datetime.Precision1Millisecond},
		{"HFSTime", 3364488391, 2082844800, datetime.Precision1Second},
	} {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			value, ok := datetime.New(tc.tag)
			r.True(ok)
			a.Equal(tc.precision, value.Precision())

			r.NoError(value.CopyFromDateTimeString("2010-08-12 20:06:31"))
			n, ok := value.NormalizedTimestamp()
			a.True(ok)
			a.True(n.Equal(decimal.NewFromInt(1281643591)), "got %s", n)

			dict, ok := value.(datetime.DictConvertible)
			r.True(ok)
			a.Equal(map[string]any{"timestamp": tc.timestamp}, dict.CopyToDict())
		})
	}
}

func TestFiletime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	ft := NewFiletime(129261171910000000)
	s, ok := ft.CopyToDateTimeString()
	a.True(ok)
	a.Equal("2010-08-12 20:06:31.0000000", s)

	// Timestamp zero is the FILETIME epoch.
	ft = NewFiletime(0)
	s, ok = ft.CopyToDateTimeString()
	a.True(ok)
	a.Equal("1601-01-01 00:00:00.0000000", s)

	// Dates before the epoch are input rejection, not corruption.
	a.Error(ft.CopyFromDateTimeString("1600-12-31 23:59:59"))
}

func TestWebKitTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	wt := NewWebKitTime(0)
	r.NoError(wt.CopyFromDateTimeString("2010-08-12 20:06:31.429876"))
	ts, ok := wt.Timestamp()
	a.True(ok)
	a.Equal(int64(12926117191429876), ts)

	s, ok := wt.CopyToDateTimeString()
	a.True(ok)
	a.Equal("2010-08-12 20:06:31.429876", s)
}

func TestJavaTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	jt := NewJavaTime(1281643591546)
	s, ok := jt.CopyToDateTimeString()
	a.True(ok)
	a.Equal("2010-08-12 20:06:31.546", s)

	// Signed: milliseconds before 1970 are valid.
	jt = NewJavaTime(-1000)
	s, ok = jt.CopyToDateTimeString()
	a.True(ok)
	a.Equal("1969-12-31 23:59:59.000", s)
}

func TestHFSTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	ht := NewHFSTime(3364488391)
	s, ok := ht.CopyToDateTimeString()
	a.True(ok)
	a.Equal("2010-08-12 20:06:31", s)

	ht = NewHFSTime(0)
	s, ok = ht.CopyToDateTimeString()
	a.True(ok)
	a.Equal("1904-01-01 00:00:00", s)

	// Unsigned: no dates before 1904.
	ht = NewHFSTime(-1)
	_, ok = ht.CopyToDateTimeString()
	a.False(ok)
}
