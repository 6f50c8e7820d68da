package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/dtnorm/datetime"
)

func TestFATDateTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	fdt, err := NewFATDateTime(0xa8d03d0c)
	r.NoError(err)
	a.Equal(datetime.Precision2Seconds, fdt.Precision())
	a.Equal("FATDateTime", fdt.Tag())

	packed, ok := fdt.FATDateTime()
	a.True(ok)
	a.Equal(uint32(0xa8d03d0c), packed)

	s, ok := fdt.CopyToDateTimeString()
	a.True(ok)
	a.Equal("2010-08-12 21:06:32", s)

	// The normalized value matches an equivalent POSIX timestamp.
	pt := NewPosixTime(0)
	r.NoError(pt.CopyFromDateTimeString(s))
	exp, ok := pt.NormalizedTimestamp()
	r.True(ok)
	got, ok := fdt.NormalizedTimestamp()
	a.True(ok)
	a.True(got.Equal(exp), "got %s want %s", got, exp)
}

func TestFATDateTimeInvalid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		packed uint32
	}{
		{"month zero", 0x0000_001c},
		{"month thirteen", 0x0000_01bc},
		{"day zero", 0x0000_3d00},
		{"invalid leap day", 0x0000_3c5d},
		{"hours out of bounds", 0xc000_3d0c},
		{"minutes out of bounds", 0x0780_3d0c},
		{"seconds out of bounds", 0x001e_3d0c},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewFATDateTime(tc.packed)
			require.Error(t, err)
			require.ErrorIs(t, err, datetime.ErrDateTime)
		})
	}
}

func TestFATDateTimeCopyFromDateTimeString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	value, ok := datetime.New("FATDateTime")
	r.True(ok)
	fdt := value.(*FATDateTime)

	_, ok = fdt.CopyToDateTimeString()
	a.False(ok)
	_, ok = fdt.NormalizedTimestamp()
	a.False(ok)

	r.NoError(fdt.CopyFromDateTimeString("2010-08-12 21:06:32"))
	packed, ok := fdt.FATDateTime()
	a.True(ok)
	a.Equal(uint32(0xa8d03d0c), packed)

	// Odd seconds truncate to the 2 second granularity.
	r.NoError(fdt.CopyFromDateTimeString("2010-08-12 21:06:33"))
	s, ok := fdt.CopyToDateTimeString()
	a.True(ok)
	a.Equal("2010-08-12 21:06:32", s)

	// The FAT epoch starts at 1980 and the year field is 7 bits wide.
	r.Error(fdt.CopyFromDateTimeString("1979-12-31 23:59:58"))
	r.Error(fdt.CopyFromDateTimeString("2108-01-01 00:00:00"))
}

func TestFATDateTimeDict(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	fdt, err := NewFATDateTime(0xa8d03d0c)
	r.NoError(err)
	a.Equal(map[string]any{"fat_date_time": uint32(0xa8d03d0c)}, fdt.CopyToDict())

	value, ok := datetime.New("FATDateTime")
	r.True(ok)
	parsed := value.(*FATDateTime)
	r.NoError(parsed.CopyFromDict(map[string]any{"fat_date_time": float64(2832219404)}))

	s, ok := parsed.CopyToDateTimeString()
	a.True(ok)
	a.Equal("2010-08-12 21:06:32", s)

	r.Error(parsed.CopyFromDict(map[string]any{"fat_date_time": float64(-1)}))
}
