package rt

import "golang.org/x/sys/unix"

// Micros is a monotonic timestamp or interval in microseconds.
type Micros int64

// Now reads CLOCK_MONOTONIC. Returns 0 if the clock cannot be read.
func Now() Micros {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return Micros(ts.Sec)*1e6 + Micros(ts.Nsec/1000)
}
