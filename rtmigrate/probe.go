// Package rtmigrate checks that runnable high-priority real-time tasks
// actually run: N workers at ascending SCHED_FIFO priorities busy-loop in
// coordinator-paced rounds while the highest-priority worker hops across
// CPUs, and the recorded start latencies must follow priority order
// within a configured tolerance.
package rtmigrate

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"

	"github.com/Martchus/ltp/rt"
	"github.com/Martchus/ltp/stats"
	"github.com/Martchus/ltp/tst"
)

// Probe owns one experiment: the barriers, the spawned tasks and the
// sample series they fill. Run state (run, epoch, done) is written by the
// coordinator only and published to the workers by barrier crossings.
type Probe struct {
	cfg              Config
	prioMin, prioMax int
	cpus             []int

	start *rt.Barrier
	end   *rt.Barrier

	// Per task id: start offset and busy-loop end offset in microseconds
	// from the run epoch, and iterations completed.
	starts  []*stats.Series
	lengths []*stats.Series
	loops   []*stats.Series

	tasks []*rt.Task

	run      int
	epoch    rt.Micros
	done     bool
	accepted int
	failed   bool

	stop   atomic.Bool
	marker *rt.Marker
}

// New validates the configuration and allocates the experiment.
func New(cfg Config) (*Probe, error) {
	if cfg.NrTasks < 1 {
		return nil, fmt.Errorf("need at least one task, have %d", cfg.NrTasks)
	}
	if cfg.NrRuns < 1 {
		return nil, fmt.Errorf("need at least one run, have %d", cfg.NrRuns)
	}
	min, max, err := rt.PriorityRange(unix.SCHED_FIFO)
	if err != nil {
		return nil, fmt.Errorf("SCHED_FIFO priority range: %w", err)
	}
	cpus, err := rt.AffinityCPUs()
	if err != nil {
		return nil, fmt.Errorf("query CPU affinity: %w", err)
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Progress == nil {
		cfg.Progress = os.Stderr
	}

	p := &Probe{
		cfg:     cfg,
		prioMin: min,
		// Highest priority stays reserved for the coordinator.
		prioMax: max - 1,
		cpus:    cpus,
		start:   rt.NewBarrier(cfg.NrTasks + 1),
		end:     rt.NewBarrier(cfg.NrTasks + 1),
	}
	for i := 0; i < cfg.NrTasks; i++ {
		p.starts = append(p.starts, stats.NewSeries(cfg.NrRuns))
		p.lengths = append(p.lengths, stats.NewSeries(cfg.NrRuns))
		p.loops = append(p.loops, stats.NewSeries(cfg.NrRuns))
	}
	return p, nil
}

// Stop requests a cooperative stop at the next run boundary.
func (p *Probe) Stop() {
	p.stop.Store(true)
}

// Run drives the experiment to completion and reports through h. The
// verdict is a TFAIL only for a confirmed priority-ordering violation;
// an interrupt merely truncates the collected runs.
func (p *Probe) Run(h *tst.T) {
	p.marker = rt.OpenMarker()
	defer p.marker.Close()

	for i := 0; i < p.cfg.NrTasks; i++ {
		prio := clamp(p.cfg.PrioStart+i, p.prioMin, p.prioMax)
		p.tasks = append(p.tasks, rt.Spawn(i, prio, p.worker))
	}

	// Elevate above every worker. A refusal leaves the whole experiment
	// time-shared, which still produces a report, so only warn.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := rt.SetFIFOPriority(clamp(p.cfg.NrTasks+p.cfg.PrioStart, p.prioMin, p.prioMax+1)); err != nil {
		h.Warnf("cannot set priority of main thread: %v", err)
	}

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt)
	defer func() {
		signal.Stop(stopCh)
		close(stopCh)
	}()
	go func() {
		for range stopCh {
			p.Stop()
		}
	}()

	bar := progress{w: p.cfg.Progress}
	bar.update(0)

	accepted := 0
	for run := 0; run < p.cfg.NrRuns; run++ {
		p.run = run
		p.epoch = rt.Now()
		p.marker.Printf("Loop %d now=%d\n", run, p.epoch)

		p.start.Wait()
		p.marker.Printf("All running!!!\n")

		time.Sleep(p.cfg.Interval)
		bar.update(run * 100 / p.cfg.NrRuns)

		end := rt.Now()
		p.marker.Printf("Loop %d end now=%d diff=%d\n", run, end, end-p.epoch)
		p.end.Wait()

		accepted = run + 1
		if p.stop.Load() {
			break
		}
		if p.cfg.Check && p.violationIn(run) {
			p.failed = true
			break
		}
	}
	bar.finish()

	p.accepted = accepted
	p.truncate(accepted)

	// Release the workers one final time with done set so they exit
	// instead of starting another interval.
	p.done = true
	p.start.Wait()
	for _, t := range p.tasks {
		t.Join()
	}

	p.report(h)
}

// worker is one load task. It spins for RunInterval per round and records
// when the round actually started for it.
func (p *Probe) worker(t *rt.Task) {
	high := t.ID == p.cfg.NrTasks-1
	next := 0
	runInterval := rt.Micros(p.cfg.RunInterval / time.Microsecond)

	for {
		if high {
			// Hop to the next CPU so the lower-priority tasks compete
			// with a moving target.
			if err := rt.PinCPU(p.cpus[next]); err != nil {
				glog.V(1).Infof("task %d: pin to CPU %d: %v", t.ID, p.cpus[next], err)
			}
			next = (next + 1) % len(p.cpus)
		}
		p.start.Wait()
		if p.done {
			return
		}
		start := rt.Now()
		p.marker.Printf("Thread %d: started %d diff %d\n", t.TID, start, start-p.epoch)
		l := busyLoop(start, runInterval)
		p.record(t.ID, start, rt.Now(), l)
		p.end.Wait()
	}
}

// busyLoop spins reading the clock until d has elapsed, returning the
// number of iterations as a proxy for CPU time actually granted.
func busyLoop(start, d rt.Micros) uint64 {
	var l uint64
	for {
		l++
		if rt.Now()-start >= d {
			return l
		}
	}
}

func (p *Probe) record(id int, start, length rt.Micros, loops uint64) {
	p.starts[id].Append(p.run, int64(start-p.epoch))
	p.lengths[id].Append(p.run, int64(length-p.epoch))
	p.loops[id].Append(p.run, int64(loops))
}

// violationIn rebuilds the per-task samples of one run and applies the
// ordering check.
func (p *Probe) violationIn(run int) bool {
	samples := make([]runSample, p.cfg.NrTasks)
	for i := range samples {
		samples[i] = runSample{
			start:  p.starts[i].Value(run),
			length: p.lengths[i].Value(run),
			loops:  p.loops[i].Value(run),
		}
	}
	return violation(samples, int64(p.cfg.MaxErr))
}

func (p *Probe) truncate(n int) {
	for i := range p.starts {
		p.starts[i].Truncate(n)
		p.lengths[i].Truncate(n)
		p.loops[i].Truncate(n)
	}
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
