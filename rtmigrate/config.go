package rtmigrate

import (
	"io"
	"time"

	"github.com/Martchus/ltp/rt"
)

// Defaults, same values the test has always used.
const (
	DefaultInterval    = 100 * time.Millisecond
	DefaultRunInterval = 20 * time.Millisecond
	DefaultNrRuns      = 50
	DefaultPrioStart   = 2
	DefaultMaxErr      = rt.Micros(1000)
)

// Config describes one probe experiment.
type Config struct {
	// NrTasks is the number of worker tasks. Task id i runs at SCHED_FIFO
	// priority PrioStart+i, clamped to the scheduler's range; the
	// highest-priority task additionally hops across CPUs every run.
	NrTasks   int
	PrioStart int

	// RunInterval is how long each task busy-loops per run; Interval is
	// how long the coordinator sleeps while the tasks compete.
	RunInterval time.Duration
	Interval    time.Duration

	// MaxErr is the start-time difference, in microseconds, still
	// attributed to scheduling jitter rather than a misplaced task.
	MaxErr rt.Micros

	NrRuns int

	// Check enables the per-run ordering verification. The samples are
	// collected and reported either way.
	Check bool

	// Out receives the report (default os.Stdout); Progress receives the
	// progress bar (default os.Stderr).
	Out      io.Writer
	Progress io.Writer
}

// DefaultConfig returns the stock experiment; the caller still picks the
// task count.
func DefaultConfig() Config {
	return Config{
		PrioStart:   DefaultPrioStart,
		RunInterval: DefaultRunInterval,
		Interval:    DefaultInterval,
		MaxErr:      DefaultMaxErr,
		NrRuns:      DefaultNrRuns,
		Check:       true,
	}
}
