package rt

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PriorityRange returns the static priority bounds of a scheduling policy.
func PriorityRange(policy int) (min, max int, err error) {
	// x/sys/unix has no wrappers for these two.
	lo, _, e := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MIN, uintptr(policy), 0, 0)
	if e != 0 {
		return 0, 0, fmt.Errorf("sched_get_priority_min(%d): %w", policy, e)
	}
	hi, _, e := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX, uintptr(policy), 0, 0)
	if e != 0 {
		return 0, 0, fmt.Errorf("sched_get_priority_max(%d): %w", policy, e)
	}
	return int(lo), int(hi), nil
}

// SetFIFOPriority moves the calling thread into SCHED_FIFO at prio. The
// caller must be locked to its OS thread.
func SetFIFOPriority(prio int) error {
	attr := unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   unix.SCHED_FIFO,
		Priority: uint32(prio),
	}
	return unix.SchedSetAttr(0, &attr, 0)
}
