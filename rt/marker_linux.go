package rt

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

// Well-known locations of the tracing filesystem.
// TODO: fall back to scanning /proc/mounts for a relocated tracefs.
var markerPaths = []string{
	"/sys/kernel/tracing/trace_marker",
	"/sys/kernel/debug/tracing/trace_marker",
	"/debug/tracing/trace_marker",
	"/debugfs/tracing/trace_marker",
}

// Marker writes annotations into the kernel trace buffer so test phases
// can be correlated with a captured trace. The zero value and a Marker on
// a system without tracefs both discard writes.
type Marker struct {
	f *os.File
}

// OpenMarker probes the usual trace_marker locations. A missing or
// unreadable tracefs is not an error.
func OpenMarker() *Marker {
	for _, p := range markerPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err == nil {
			return &Marker{f: f}
		}
		if !os.IsNotExist(err) {
			glog.V(1).Infof("trace_marker %s: %v", p, err)
		}
	}
	return &Marker{}
}

// Printf writes one formatted annotation.
func (m *Marker) Printf(format string, args ...interface{}) {
	if m == nil || m.f == nil {
		return
	}
	if _, err := fmt.Fprintf(m.f, format, args...); err != nil {
		glog.V(1).Infof("trace_marker write: %v", err)
	}
}

func (m *Marker) Close() {
	if m != nil && m.f != nil {
		m.f.Close()
		m.f = nil
	}
}
