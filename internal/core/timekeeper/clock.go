package timekeeper

import "time"

// Handle identifies a scheduled callback. The zero Handle means none.
type Handle uint64

// Clock schedules delayed callbacks on a single control thread.
// Cancel must be safe to call with a zero, unknown or already fired handle.
type Clock interface {
	Schedule(after time.Duration, callback func()) Handle
	Cancel(handle Handle)
}
