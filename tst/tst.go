// Package tst is the process-level harness the suite's binaries run
// under. It accounts results in LTP's terms (TPASS, TFAIL, TBROK, TCONF,
// TWARN, TINFO), checks test requirements, prints a system information
// header and a summary block, and turns the counters into the
// LTP-compatible exit code.
package tst

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"

	"github.com/Martchus/ltp/env"
)

type ResultType int

const (
	Pass ResultType = iota
	Fail
	Brok
	Conf
	Warn
	Info
)

func (r ResultType) String() string {
	switch r {
	case Pass:
		return "TPASS"
	case Fail:
		return "TFAIL"
	case Brok:
		return "TBROK"
	case Conf:
		return "TCONF"
	case Warn:
		return "TWARN"
	case Info:
		return "TINFO"
	}
	return fmt.Sprintf("T?%d", int(r))
}

const colorReset = "\033[0m"

func (r ResultType) color() string {
	switch r {
	case Pass:
		return "\033[1;32m"
	case Fail, Brok:
		return "\033[1;31m"
	case Conf:
		return "\033[1;33m"
	case Warn:
		return "\033[1;35m"
	}
	return "\033[1;34m"
}

type (
	// Test is one conformance test program.
	Test struct {
		Name      string
		NeedsRoot bool
		MinCPUs   int

		Setup   func(*T) error
		Run     func(*T) error
		Cleanup func(*T)
	}

	// T accumulates results for a running test and writes them out as
	// they arrive.
	T struct {
		name   string
		out    io.Writer
		seq    int
		counts [Info + 1]int
		closed bool
	}
)

func NewT(name string, out io.Writer) *T {
	return &T{name: name, out: out}
}

func (t *T) report(rt ResultType, format string, args ...interface{}) {
	if t.closed {
		panic("tst: result reported after the summary")
	}
	seq := 0
	if rt != Info {
		t.seq++
		seq = t.seq
	}
	t.counts[rt]++
	label := rt.String()
	if env.Colorize {
		label = rt.color() + label + colorReset
	}
	fmt.Fprintf(t.out, "%s %d %s: %s\n", t.name, seq, label, fmt.Sprintf(format, args...))
}

func (t *T) Passf(format string, args ...interface{}) { t.report(Pass, format, args...) }
func (t *T) Failf(format string, args ...interface{}) { t.report(Fail, format, args...) }
func (t *T) Brokf(format string, args ...interface{}) { t.report(Brok, format, args...) }
func (t *T) Conff(format string, args ...interface{}) { t.report(Conf, format, args...) }
func (t *T) Warnf(format string, args ...interface{}) { t.report(Warn, format, args...) }
func (t *T) Infof(format string, args ...interface{}) { t.report(Info, format, args...) }

// Count returns how many results of one kind have been reported.
func (t *T) Count(rt ResultType) int {
	return t.counts[rt]
}

// Exit prints the summary block and returns the process exit code: the OR
// of 1 (fails), 2 (broken), 4 (warnings) and 32 (skips). Further result
// reporting is a programming error.
func (t *T) Exit() int {
	fmt.Fprintf(t.out, "\nSummary:\npassed   %d\nfailed   %d\nbroken   %d\nskipped  %d\nwarnings %d\n",
		t.counts[Pass], t.counts[Fail], t.counts[Brok], t.counts[Conf], t.counts[Warn])
	t.closed = true

	code := 0
	if t.counts[Fail] > 0 {
		code |= 1
	}
	if t.counts[Brok] > 0 {
		code |= 2
	}
	if t.counts[Warn] > 0 {
		code |= 4
	}
	if t.counts[Conf] > 0 {
		code |= 32
	}
	return code
}

type confError struct {
	s string
}

func (e *confError) Error() string { return e.s }

// Skipf builds an error that Run and Setup can return to end the test
// with a TCONF result instead of TBROK.
func Skipf(format string, args ...interface{}) error {
	return &confError{s: fmt.Sprintf(format, args...)}
}

// Errno names the errno wrapped in err for result messages; nil maps to
// SUCCESS.
func Errno(err error) string {
	if err == nil {
		return "SUCCESS"
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return unix.ErrnoName(errno)
	}
	return err.Error()
}

// Main runs one test and exits the process with its LTP exit code. Flags
// registered by the binary are parsed before the test sees them.
func Main(test *Test) {
	flag.Parse()
	code := Run(test, os.Stdout)
	glog.Flush()
	os.Exit(code)
}

// Run drives requirement checks, setup, the test body and cleanup,
// reporting into out. Split from Main so tests can capture the output.
func Run(test *Test, out io.Writer) int {
	t := NewT(test.Name, out)
	t.sysinfo()

	if test.NeedsRoot && os.Geteuid() != 0 {
		t.Conff("%s needs root", test.Name)
		return t.Exit()
	}
	if test.MinCPUs > 1 && NCPU() < test.MinCPUs {
		t.Conff("%s needs at least %d CPUs", test.Name, test.MinCPUs)
		return t.Exit()
	}

	if test.Setup != nil {
		if err := test.Setup(t); err != nil {
			t.end("setup", err)
			if test.Cleanup != nil {
				test.Cleanup(t)
			}
			return t.Exit()
		}
	}
	if err := test.Run(t); err != nil {
		t.end(test.Name, err)
	}
	if test.Cleanup != nil {
		test.Cleanup(t)
	}
	if t.seq == 0 {
		t.Brokf("%s reported no results", test.Name)
	}
	return t.Exit()
}

func (t *T) end(stage string, err error) {
	var conf *confError
	if errors.As(err, &conf) {
		t.Conff("%s", conf.s)
		return
	}
	t.Brokf("%s: %v", stage, err)
}
