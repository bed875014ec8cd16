package tst

import (
	"runtime"

	"github.com/golang/glog"
	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sys/unix"
)

// NCPU returns the number of online CPUs.
func NCPU() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// sysinfo prints the kernel and CPU header every test starts with.
func (t *T) sysinfo() {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		glog.Errorf("uname: %v", err)
	} else {
		t.Infof("%s %s %s %s",
			unix.ByteSliceToString(uts.Sysname[:]),
			unix.ByteSliceToString(uts.Release[:]),
			unix.ByteSliceToString(uts.Version[:]),
			unix.ByteSliceToString(uts.Machine[:]))
	}

	model := ""
	if infos, err := cpu.Info(); err != nil {
		glog.V(1).Infof("cpu info: %v", err)
	} else if len(infos) > 0 {
		model = infos[0].ModelName
	}
	if model != "" {
		t.Infof("%d CPUs (%s)", NCPU(), model)
	} else {
		t.Infof("%d CPUs", NCPU())
	}
}
