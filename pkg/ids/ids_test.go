package ids

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierPrefixes(t *testing.T) {
	assert.True(t, strings.HasPrefix(NewTaskID(), "task-"))
	assert.True(t, strings.HasPrefix(NewLeaseID(), "lease-"))
	assert.True(t, strings.HasPrefix(NewReservationID(), "rsv-"))
	assert.True(t, strings.HasPrefix(NewConflictID(), "conflict-"))
	assert.NotEqual(t, NewTaskID(), NewTaskID())
}

func TestSyntheticTaskID(t *testing.T) {
	assert.Equal(t, "task-legacy-42", SyntheticTaskID("42"))
}

func TestNowMillisNeverDecreases(t *testing.T) {
	prev := NowMillis()
	for i := 0; i < 1000; i++ {
		next := NowMillis()
		assert.GreaterOrEqual(t, next, prev)
		prev = next
	}
}

func TestNowMillisStaysOnWallClock(t *testing.T) {
	// A burst of calls within one millisecond must not push the clock
	// ahead of real time; expiry math depends on it staying honest.
	for i := 0; i < 5000; i++ {
		NowMillis()
	}
	drift := NowMillis() - time.Now().UnixMilli()
	assert.LessOrEqual(t, drift, int64(1))
}

func TestMillisRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	assert.Equal(t, now.UnixMilli(), Millis(now))
	assert.True(t, FromMillis(Millis(now)).Equal(now))
	assert.Equal(t, int64(90_000), DurationMillis(90*time.Second))
}
