// Package formats provides the concrete date and time formats. Each tick
// format is a constant set over the shared engine in the datetime package;
// element formats carry their calendar elements directly. Every format
// registers itself with the datetime registry under its type name.
package formats

import "github.com/theory/dtnorm/datetime"

// dotNetDef parameterizes the .NET DateTime format: 100 nanosecond ticks
// since 0001-01-01, which places the POSIX epoch 62135596800 seconds in.
var dotNetDef = datetime.NewFormatDef(
	"DotNetDateTime",
	datetime.Epoch{Year: 1, Month: 1, Day: 1},
	datetime.Precision100Nanoseconds,
	7,
	false,
)

// DotNetDateTime is a .NET DateTime timestamp: a 64-bit integer counting
// 100 nanosecond intervals since 12:00 AM January 1, year 1 A.D. in the
// proleptic Gregorian calendar.
type DotNetDateTime struct {
	datetime.TickTime
}

// NewDotNetDateTime returns a DotNetDateTime holding timestamp.
func NewDotNetDateTime(timestamp int64) *DotNetDateTime {
	return &DotNetDateTime{datetime.NewTickTimeWithTimestamp(dotNetDef, timestamp)}
}

func init() {
	datetime.Register(dotNetDef.Name, func() datetime.DateTimeValues {
		return &DotNetDateTime{datetime.NewTickTime(dotNetDef)}
	})
}
