package formats

import "github.com/theory/dtnorm/datetime"

var (
	posixDef = datetime.NewFormatDef(
		"PosixTime", datetime.PosixEpoch, datetime.Precision1Second, 0, true,
	)
	posixMillisecondsDef = datetime.NewFormatDef(
		"PosixTimeInMilliseconds", datetime.PosixEpoch, datetime.Precision1Millisecond, 3, true,
	)
	posixMicrosecondsDef = datetime.NewFormatDef(
		"PosixTimeInMicroseconds", datetime.PosixEpoch, datetime.Precision1Microsecond, 6, true,
	)
	posixNanosecondsDef = datetime.NewFormatDef(
		"PosixTimeInNanoseconds", datetime.PosixEpoch, datetime.Precision1Nanosecond, 9, true,
	)
)

// PosixTime is a signed count of seconds since 1970-01-01 00:00:00.
type PosixTime struct {
	datetime.TickTime
}

// NewPosixTime returns a PosixTime holding timestamp.
func NewPosixTime(timestamp int64) *PosixTime {
	return &PosixTime{datetime.NewTickTimeWithTimestamp(posixDef, timestamp)}
}

// PosixTimeInMilliseconds is a signed count of milliseconds since
// 1970-01-01 00:00:00.
type PosixTimeInMilliseconds struct {
	datetime.TickTime
}

// NewPosixTimeInMilliseconds returns a PosixTimeInMilliseconds holding
// timestamp.
func NewPosixTimeInMilliseconds(timestamp int64) *PosixTimeInMilliseconds {
	return &PosixTimeInMilliseconds{datetime.NewTickTimeWithTimestamp(posixMillisecondsDef, timestamp)}
}

// PosixTimeInMicroseconds is a signed count of microseconds since
// 1970-01-01 00:00:00.
type PosixTimeInMicroseconds struct {
	datetime.TickTime
}

// NewPosixTimeInMicroseconds returns a PosixTimeInMicroseconds holding
// timestamp.
func NewPosixTimeInMicroseconds(timestamp int64) *PosixTimeInMicroseconds {
	return &PosixTimeInMicroseconds{datetime.NewTickTimeWithTimestamp(posixMicrosecondsDef, timestamp)}
}

// PosixTimeInNanoseconds is a signed count of nanoseconds since
// 1970-01-01 00:00:00. Its native range is clamped to int64, which covers
// 1677-09-21 through 2262-04-11.
type PosixTimeInNanoseconds struct {
	datetime.TickTime
}

// NewPosixTimeInNanoseconds returns a PosixTimeInNanoseconds holding
// timestamp.
func NewPosixTimeInNanoseconds(timestamp int64) *PosixTimeInNanoseconds {
	return &PosixTimeInNanoseconds{datetime.NewTickTimeWithTimestamp(posixNanosecondsDef, timestamp)}
}

func init() {
	datetime.Register(posixDef.Name, func() datetime.DateTimeValues {
		return &PosixTime{datetime.NewTickTime(posixDef)}
	})
	datetime.Register(posixMillisecondsDef.Name, func() datetime.DateTimeValues {
		return &PosixTimeInMilliseconds{datetime.NewTickTime(posixMillisecondsDef)}
	})
	datetime.Register(posixMicrosecondsDef.Name, func() datetime.DateTimeValues {
		return &PosixTimeInMicroseconds{datetime.NewTickTime(posixMicrosecondsDef)}
	})
	datetime.Register(posixNanosecondsDef.Name, func() datetime.DateTimeValues {
		return &PosixTimeInNanoseconds{datetime.NewTickTime(posixNanosecondsDef)}
	})
}
