// Package ids provides millisecond timestamps and opaque entity identifiers.
package ids

import (
	"sync"
	"time"
)

var (
	clockMu    sync.Mutex
	lastMillis int64
)

// NowMillis returns the current wall-clock time in milliseconds.
// Within a process the returned value never decreases, even if the
// wall clock steps backwards (NTP adjustment).
func NowMillis() int64 {
	clockMu.Lock()
	defer clockMu.Unlock()

	now := time.Now().UnixMilli()
	if now < lastMillis {
		now = lastMillis
	}
	lastMillis = now
	return now
}

// Millis converts a time.Time to milliseconds since epoch.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// DurationMillis converts a duration to whole milliseconds.
func DurationMillis(d time.Duration) int64 {
	return d.Milliseconds()
}

// FromMillis converts milliseconds since epoch to a time.Time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
