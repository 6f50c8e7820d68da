package formats

import "github.com/theory/dtnorm/datetime"

// javaDef parameterizes the java.lang.System.currentTimeMillis format:
// signed milliseconds since the POSIX epoch.
var javaDef = datetime.NewFormatDef(
	"JavaTime", datetime.PosixEpoch, datetime.Precision1Millisecond, 3, true,
)

// JavaTime is a Java timestamp: a signed count of milliseconds since
// 1970-01-01 00:00:00.
type JavaTime struct {
	datetime.TickTime
}

// NewJavaTime returns a JavaTime holding timestamp.
func NewJavaTime(timestamp int64) *JavaTime {
	return &JavaTime{datetime.NewTickTimeWithTimestamp(javaDef, timestamp)}
}

func init() {
	datetime.Register(javaDef.Name, func() datetime.DateTimeValues {
		return &JavaTime{datetime.NewTickTime(javaDef)}
	})
}
