package formats

import "github.com/theory/dtnorm/datetime"

// filetimeDef parameterizes the Windows FILETIME format: 100 nanosecond
// ticks since 1601-01-01, which places the POSIX epoch 11644473600 seconds
// in.
var filetimeDef = datetime.NewFormatDef(
	"Filetime",
	datetime.Epoch{Year: 1601, Month: 1, Day: 1},
	datetime.Precision100Nanoseconds,
	7,
	false,
)

// Filetime is a Windows FILETIME timestamp: an unsigned count of
// 100 nanosecond intervals since 1601-01-01 00:00:00.
type Filetime struct {
	datetime.TickTime
}

// NewFiletime returns a Filetime holding timestamp.
func NewFiletime(timestamp int64) *Filetime {
	return &Filetime{datetime.NewTickTimeWithTimestamp(filetimeDef, timestamp)}
}

func init() {
	datetime.Register(filetimeDef.Name, func() datetime.DateTimeValues {
		return &Filetime{datetime.NewTickTime(filetimeDef)}
	})
}
