package rtmigrate

import (
	"fmt"
	"io"
	"os"

	"github.com/Martchus/ltp/stats"
	"github.com/Martchus/ltp/tst"
)

// report prints the accepted runs, the per-task summaries and the
// verdict. The table layout is the one the test's users have parsed for
// years, so it stays byte-compatible; the Dev line is the only addition.
func (p *Probe) report(h *tst.T) {
	w := p.cfg.Out

	fmt.Fprintf(w, "Iter: ")
	for t := 0; t < p.cfg.NrTasks; t++ {
		fmt.Fprintf(w, "%6d  ", t)
	}
	fmt.Fprintf(w, "\n")

	for run := 0; run < p.accepted; run++ {
		fmt.Fprintf(w, "%4d:   ", run)
		printRow(w, p.starts, run)
		fmt.Fprintf(w, " len:   ")
		printRow(w, p.lengths, run)
		fmt.Fprintf(w, " loops: ")
		printRow(w, p.loops, run)
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "Parent pid: %d\n", os.Getpid())

	for t, task := range p.tasks {
		sum := p.starts[t].Summary()
		fmt.Fprintf(w, " Task %d (prio %d) (pid %d):\n", t, task.Prio, task.TID)
		fmt.Fprintf(w, "   Max: %d us\n", int64(sum.Max))
		fmt.Fprintf(w, "   Min: %d us\n", int64(sum.Min))
		fmt.Fprintf(w, "   Tot: %d us\n", int64(sum.Total))
		fmt.Fprintf(w, "   Avg: %d us\n", int64(sum.Mean))
		fmt.Fprintf(w, "   Dev: %d us (95%% interval %d .. %d us)\n",
			int64(sum.StdDev), int64(sum.CLow), int64(sum.CHigh))
		fmt.Fprintf(w, "\n")
	}

	if p.failed {
		h.Failf("high prio tasks get more cpu time than low prio tasks")
	} else {
		h.Passf("high prio tasks get more cpu time than low prio tasks")
	}
}

func printRow(w io.Writer, series []*stats.Series, run int) {
	for _, s := range series {
		fmt.Fprintf(w, "%6d  ", s.Value(run))
	}
	fmt.Fprintf(w, "\n")
}
