package formats

import "github.com/theory/dtnorm/datetime"

// webKitDef parameterizes the WebKit timestamp format used by Chrome and
// Safari databases: microseconds since 1601-01-01.
var webKitDef = datetime.NewFormatDef(
	"WebKitTime",
	datetime.Epoch{Year: 1601, Month: 1, Day: 1},
	datetime.Precision1Microsecond,
	6,
	false,
)

// WebKitTime is a WebKit timestamp: a count of microseconds since
// 1601-01-01 00:00:00.
type WebKitTime struct {
	datetime.TickTime
}

// NewWebKitTime returns a WebKitTime holding timestamp.
func NewWebKitTime(timestamp int64) *WebKitTime {
	return &WebKitTime{datetime.NewTickTimeWithTimestamp(webKitDef, timestamp)}
}

func init() {
	datetime.Register(webKitDef.Name, func() datetime.DateTimeValues {
		return &WebKitTime{datetime.NewTickTime(webKitDef)}
	})
}
