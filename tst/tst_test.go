package tst

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestReportLinesAndCounts(t *testing.T) {
	var buf bytes.Buffer
	h := NewT("demo", &buf)
	h.Infof("starting")
	h.Passf("first")
	h.Failf("second")
	h.Warnf("third")
	h.Conff("fourth")
	h.Brokf("fifth")

	out := buf.String()
	assert.Contains(t, out, "demo 0 TINFO: starting")
	assert.Contains(t, out, "demo 1 TPASS: first")
	assert.Contains(t, out, "demo 2 TFAIL: second")
	assert.Contains(t, out, "demo 3 TWARN: third")
	assert.Contains(t, out, "demo 4 TCONF: fourth")
	assert.Contains(t, out, "demo 5 TBROK: fifth")

	for rt, want := range map[ResultType]int{Pass: 1, Fail: 1, Warn: 1, Conf: 1, Brok: 1, Info: 1} {
		assert.Equal(t, want, h.Count(rt), rt.String())
	}

	code := h.Exit()
	assert.Equal(t, 1|2|4|32, code)
	out = buf.String()
	assert.Contains(t, out, "passed   1")
	assert.Contains(t, out, "failed   1")
	assert.Contains(t, out, "broken   1")
	assert.Contains(t, out, "skipped  1")
	assert.Contains(t, out, "warnings 1")
}

func TestExitCodeBits(t *testing.T) {
	cases := []struct {
		rt   ResultType
		want int
	}{
		{Pass, 0},
		{Fail, 1},
		{Brok, 2},
		{Warn, 4},
		{Conf, 32},
	}
	for _, c := range cases {
		h := NewT("demo", io.Discard)
		h.report(c.rt, "probe")
		assert.Equal(t, c.want, h.Exit(), c.rt.String())
	}
}

func TestReportAfterExitPanics(t *testing.T) {
	h := NewT("demo", io.Discard)
	h.Passf("ok")
	h.Exit()
	assert.Panics(t, func() { h.Passf("late") })
}

func TestRunPass(t *testing.T) {
	var buf bytes.Buffer
	code := Run(&Test{
		Name: "demo",
		Run: func(h *T) error {
			h.Passf("fine")
			return nil
		},
	}, &buf)
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "demo 1 TPASS: fine")
}

func TestRunMinCPUsSkip(t *testing.T) {
	var buf bytes.Buffer
	code := Run(&Test{
		Name:    "demo",
		MinCPUs: 1 << 20,
		Run: func(h *T) error {
			t.Error("run executed despite unmet CPU requirement")
			return nil
		},
	}, &buf)
	assert.Equal(t, 32, code)
	assert.Contains(t, buf.String(), "TCONF")
}

func TestRunSetupError(t *testing.T) {
	cleaned := false
	var buf bytes.Buffer
	code := Run(&Test{
		Name: "demo",
		Setup: func(h *T) error {
			return fmt.Errorf("no scratch space")
		},
		Run: func(h *T) error {
			t.Error("run executed despite setup failure")
			return nil
		},
		Cleanup: func(h *T) { cleaned = true },
	}, &buf)
	assert.Equal(t, 2, code)
	assert.True(t, cleaned, "cleanup after failed setup")
	assert.Contains(t, buf.String(), "TBROK: setup: no scratch space")
}

func TestRunSkipf(t *testing.T) {
	var buf bytes.Buffer
	code := Run(&Test{
		Name: "demo",
		Run: func(h *T) error {
			return Skipf("no xattr support in filesystem")
		},
	}, &buf)
	assert.Equal(t, 32, code)
	assert.Contains(t, buf.String(), "TCONF: no xattr support in filesystem")
}

func TestRunNoResults(t *testing.T) {
	var buf bytes.Buffer
	code := Run(&Test{
		Name: "demo",
		Run:  func(h *T) error { return nil },
	}, &buf)
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "reported no results")
}

func TestErrno(t *testing.T) {
	assert.Equal(t, "SUCCESS", Errno(nil))
	assert.Equal(t, "ENODATA", Errno(unix.ENODATA))
	assert.Equal(t, "EPERM", Errno(fmt.Errorf("sched_setattr: %w", unix.EPERM)))
	assert.Equal(t, "boom", Errno(errors.New("boom")))
}

func TestNCPU(t *testing.T) {
	require.Greater(t, NCPU(), 0)
}
