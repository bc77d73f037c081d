package uuidv1

import (
	"fmt"
	"time"
)

// Timestamp is a UUIDv1 time value: the number of 100 nanosecond ticks
// since Epoch. Only the low 60 bits are meaningful.
type Timestamp uint64

// MaxTimestamp is the largest tick count a UUIDv1 can carry.
const MaxTimestamp Timestamp = 1<<60 - 1

// Epoch is the origin of UUIDv1 time, the start of the Gregorian calendar.
var Epoch = time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)

const (
	ticksPerSecond      = 10_000_000
	ticksPerMicrosecond = 10
	nanosPerTick        = 100

	// Seconds between Epoch and the Unix epoch. Matches
	// (2440587 - 2299160) * 86400, the Julian day distance.
	epochToUnix = 12219292800

	maxSeconds = int64(MaxTimestamp / ticksPerSecond)
)

// TimestampFromTime converts t to ticks since Epoch, rounding the sub-tick
// remainder half up. Instants before Epoch or past MaxTimestamp are
// rejected with a KindRange error.
func TimestampFromTime(t time.Time) (Timestamp, error) {
	sec := t.Unix()
	if sec < -epochToUnix {
		return 0, newError(KindRange, t.UTC().Format(time.RFC3339Nano), "before 1582-10-15T00:00:00Z")
	}
	if sec > maxSeconds-epochToUnix {
		return 0, newError(KindRange, t.UTC().Format(time.RFC3339Nano), "exceeds 60 bits of 100ns ticks")
	}

	ticks := uint64(sec+epochToUnix)*ticksPerSecond + uint64((t.Nanosecond()+nanosPerTick/2)/nanosPerTick)
	if ticks > uint64(MaxTimestamp) {
		return 0, newError(KindRange, t.UTC().Format(time.RFC3339Nano), "exceeds 60 bits of 100ns ticks")
	}
	return Timestamp(ticks), nil
}

// Valid reports whether ts fits in 60 bits.
func (ts Timestamp) Valid() bool {
	return ts <= MaxTimestamp
}

// Time returns the instant ts denotes with full 100ns precision, in UTC.
func (ts Timestamp) Time() time.Time {
	d := int64(ts&MaxTimestamp) - epochToUnix*ticksPerSecond
	return time.Unix(d/ticksPerSecond, (d%ticksPerSecond)*nanosPerTick).UTC()
}

// Micros returns the instant ts denotes truncated to whole microseconds,
// in UTC. This is the precision Decode reports.
func (ts Timestamp) Micros() time.Time {
	us := int64((ts&MaxTimestamp)/ticksPerMicrosecond) - epochToUnix*1_000_000
	return time.UnixMicro(us).UTC()
}

func (ts Timestamp) String() string {
	return fmt.Sprintf("%d", uint64(ts))
}
