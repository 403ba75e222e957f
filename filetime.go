package libsai

import "time"

// filetimeEpochOffset is the number of seconds between the Windows FILETIME
// epoch (1601-01-01 UTC) and the Unix epoch (1970-01-01 UTC).
const filetimeEpochOffset = 11644473600

// filetimeTicksPerSecond is the number of 100-nanosecond FILETIME ticks in a
// second.
const filetimeTicksPerSecond = 10_000_000

// parseFILETIME converts a raw Windows FILETIME (100-ns ticks since
// 1601-01-01 UTC) into a time.Time, per SPEC_FULL.md §6's conversion
// formula: unixSeconds = ticks/10_000_000 - 11_644_473_600.
func parseFILETIME(ticks uint64) time.Time {
	unixSeconds := int64(ticks/filetimeTicksPerSecond) - filetimeEpochOffset
	remainderTicks := int64(ticks % filetimeTicksPerSecond)
	return time.Unix(unixSeconds, remainderTicks*100).UTC()
}
