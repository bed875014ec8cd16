package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/Martchus/ltp/rt"
	"github.com/Martchus/ltp/rtmigrate"
	"github.com/Martchus/ltp/tst"
)

var (
	prioStart = flag.Int("a", rtmigrate.DefaultPrioStart, "Priority of the threads")
	runTime   = flag.Int("r", int(rtmigrate.DefaultRunInterval/time.Millisecond), "Run time (ms) to busy loop the threads")
	sleepTime = flag.Int("t", int(rtmigrate.DefaultInterval/time.Millisecond), "Sleep time (ms) between intervals")
	maxErr    = flag.Int64("e", int64(rtmigrate.DefaultMaxErr), "Max allowed error (microsecs)")
	nrRuns    = flag.Int("l", rtmigrate.DefaultNrRuns, "Number of iterations to run")
)

func main() {
	tst.Main(&tst.Test{
		Name: "rt-migrate",
		Run:  run,
	})
}

func run(h *tst.T) error {
	cfg := rtmigrate.DefaultConfig()
	cfg.NrTasks = tst.NCPU()
	cfg.PrioStart = *prioStart
	cfg.RunInterval = time.Duration(*runTime) * time.Millisecond
	cfg.Interval = time.Duration(*sleepTime) * time.Millisecond
	cfg.MaxErr = rt.Micros(*maxErr)
	cfg.NrRuns = *nrRuns

	// An optional positional argument overrides the one-task-per-CPU
	// default.
	if args := flag.Args(); len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid number of tasks '%s'", args[0])
		}
		cfg.NrTasks = n
	}

	p, err := rtmigrate.New(cfg)
	if err != nil {
		return err
	}
	p.Run(h)
	return nil
}
