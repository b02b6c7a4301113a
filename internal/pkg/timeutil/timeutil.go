package timeutil

import "time"

// NowMillis returns the current time as epoch milliseconds, the unit
// stored in completedAt.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
