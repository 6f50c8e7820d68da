package formats

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theory/dtnorm/datetime"
)

// fatEpoch is the MS-DOS epoch, 1980-01-01.
var fatEpoch = datetime.Epoch{Year: 1980, Month: 1, Day: 1}

// fatToPosixSeconds is the exact signed second count from the FAT epoch to
// the POSIX epoch (-315532800).
var fatToPosixSeconds = int64(datetime.DaysSinceEpoch(
	fatEpoch, datetime.PosixEpoch.Year, datetime.PosixEpoch.Month, datetime.PosixEpoch.Day,
)) * datetime.SecondsPerDay

// FATDateTime is an MS-DOS FAT date and time: two packed 16-bit fields
// holding calendar elements relative to 1980 at a 2 second granularity. The
// date word occupies the lower 16 bits, the time word the upper 16.
type FATDateTime struct {
	datetime.Values

	fatDateTime uint32
	seconds     int64
	valid       bool
}

// newFATDateTime returns an empty FATDateTime.
func newFATDateTime() *FATDateTime {
	return &FATDateTime{Values: datetime.NewValues(datetime.Precision2Seconds)}
}

// NewFATDateTime returns a FATDateTime decoded from the packed value.
func NewFATDateTime(fatDateTime uint32) (*FATDateTime, error) {
	fdt := newFATDateTime()
	if err := fdt.setFATDateTime(fatDateTime); err != nil {
		return nil, err
	}
	return fdt, nil
}

// Tag returns the registry tag of the format.
func (fdt *FATDateTime) Tag() string { return "FATDateTime" }

// FATDateTime returns the packed date and time value and whether it has
// been set.
func (fdt *FATDateTime) FATDateTime() (uint32, bool) {
	return fdt.fatDateTime, fdt.valid
}

// setFATDateTime validates and stores a packed FAT date and time, keeping
// the decoded second count relative to the FAT epoch.
func (fdt *FATDateTime) setFATDateTime(fatDateTime uint32) error {
	date := int(fatDateTime & 0xffff)
	clock := int(fatDateTime >> 16)

	day := date & 0x1f
	month := (date >> 5) & 0x0f
	year := 1980 + ((date >> 9) & 0x7f)
	seconds := (clock & 0x1f) * 2
	minutes := (clock >> 5) & 0x3f
	hours := (clock >> 11) & 0x1f

	switch {
	case month < 1 || month > 12:
		return fmt.Errorf("%w: month value out of bounds: %d", datetime.ErrDateTime, month)
	case day < 1 || day > datetime.DaysInMonth(year, month):
		return fmt.Errorf("%w: day of month value out of bounds: %d", datetime.ErrDateTime, day)
	case hours > 23:
		return fmt.Errorf("%w: hours value out of bounds: %d", datetime.ErrDateTime, hours)
	case minutes > 59:
		return fmt.Errorf("%w: minutes value out of bounds: %d", datetime.ErrDateTime, minutes)
	case seconds > 59:
		return fmt.Errorf("%w: seconds value out of bounds: %d", datetime.ErrDateTime, seconds)
	}

	days := datetime.DaysSinceEpoch(fatEpoch, year, month, day)
	fdt.seconds = int64(days)*datetime.SecondsPerDay +
		int64(datetime.SecondsOfDay(hours, minutes, seconds))
	fdt.fatDateTime = fatDateTime
	fdt.valid = true
	fdt.Invalidate()
	return nil
}

// NormalizedTimestamp returns the number of seconds since 1970-01-01 as an
// exact decimal, or false when the value is unset.
func (fdt *FATDateTime) NormalizedTimestamp() (decimal.Decimal, bool) {
	return fdt.Normalized(func() (decimal.Decimal, bool) {
		if !fdt.valid {
			return decimal.Decimal{}, false
		}
		n := decimal.NewFromInt(fdt.seconds - fatToPosixSeconds)
		if offset := fdt.TimeZoneOffset(); offset != 0 {
			n = n.Sub(decimal.NewFromInt(int64(offset) * datetime.SecondsPerMinute))
		}
		return n, true
	})
}

// CopyFromDateTimeString sets the date and time from a string formatted as
// "YYYY-MM-DD hh:mm:ss[+-]##:##". Seconds are truncated to the format's
// 2 second granularity; the year must fall in 1980–2107. On failure the
// value is left untouched.
func (fdt *FATDateTime) CopyFromDateTimeString(s string) error {
	dt, err := datetime.ParseDateTimeString(s)
	if err != nil {
		return err
	}
	if dt.Year < 1980 || dt.Year > 1980+0x7f {
		return fmt.Errorf("%w: unsupported year value: %d", datetime.ErrParse, dt.Year)
	}

	seconds := dt.Seconds &^ 1
	packed := uint32(dt.Day) | uint32(dt.Month)<<5 | uint32(dt.Year-1980)<<9 |
		(uint32(seconds/2)|uint32(dt.Minutes)<<5|uint32(dt.Hours)<<11)<<16

	days := datetime.DaysSinceEpoch(fatEpoch, dt.Year, dt.Month, dt.Day)
	fdt.seconds = int64(days)*datetime.SecondsPerDay +
		int64(datetime.SecondsOfDay(dt.Hours, dt.Minutes, seconds))
	fdt.fatDateTime = packed
	fdt.valid = true
	fdt.SetTimeZoneOffset(dt.TimeZoneOffset)
	return nil
}

// CopyToDateTimeString renders the date and time as "YYYY-MM-DD hh:mm:ss".
// Returns false when the value is unset.
func (fdt *FATDateTime) CopyToDateTimeString() (string, bool) {
	if !fdt.valid {
		return "", false
	}
	days, hours, minutes, seconds := datetime.TimeFromSeconds(fdt.seconds)
	year, month, day := datetime.DateFromDays(fatEpoch, days)
	return fmt.Sprintf(
		"%04d-%02d-%02d %02d:%02d:%02d",
		year, month, day, hours, minutes, seconds,
	), true
}

// CopyToDict returns the format-specific serialization fields.
func (fdt *FATDateTime) CopyToDict() map[string]any {
	if !fdt.valid {
		return map[string]any{}
	}
	return map[string]any{"fat_date_time": fdt.fatDateTime}
}

// CopyFromDict sets the date and time from serialization fields.
func (fdt *FATDateTime) CopyFromDict(dict map[string]any) error {
	raw, ok := dict["fat_date_time"]
	if !ok {
		return nil
	}
	packed, ok := datetime.IntValue(raw)
	if !ok || packed < 0 || packed > 0xffffffff {
		return fmt.Errorf(
			"%w: invalid fat_date_time attribute %v", datetime.ErrDateTime, raw,
		)
	}
	return fdt.setFATDateTime(uint32(packed))
}

func init() {
	datetime.Register("FATDateTime", func() datetime.DateTimeValues {
		return newFATDateTime()
	})
}
