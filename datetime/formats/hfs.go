package formats

import "github.com/theory/dtnorm/datetime"

// hfsDef parameterizes the HFS/HFS+ timestamp format: seconds since
// 1904-01-01, which places the POSIX epoch 2082844800 seconds in. HFS dates
// are local time; HFS+ dates are UTC.
var hfsDef = datetime.NewFormatDef(
	"HFSTime",
	datetime.Epoch{Year: 1904, Month: 1, Day: 1},
	datetime.Precision1Second,
	0,
	false,
)

// HFSTime is an HFS timestamp: an unsigned count of seconds since
// 1904-01-01 00:00:00.
type HFSTime struct {
	datetime.TickTime
}

// NewHFSTime returns an HFSTime holding timestamp.
func NewHFSTime(timestamp int64) *HFSTime {
	return &HFSTime{datetime.NewTickTimeWithTimestamp(hfsDef, timestamp)}
}

func init() {
	datetime.Register(hfsDef.Name, func() datetime.DateTimeValues {
		return &HFSTime{datetime.NewTickTime(hfsDef)}
	})
}
