package rt

import (
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"
)

// Task is a worker goroutine locked to its own OS thread and, when the
// scheduler permits, elevated to a SCHED_FIFO priority.
type Task struct {
	ID   int
	Prio int
	TID  int

	joined chan struct{}
}

// Spawn starts fn on a locked OS thread at the given SCHED_FIFO priority.
// If the priority cannot be set the task still runs time-shared and the
// failure is only logged. TID is valid once the task has crossed its first
// synchronization point with the spawner. The thread stays locked for the
// task's lifetime so its scheduling state dies with it.
func Spawn(id, prio int, fn func(*Task)) *Task {
	t := &Task{ID: id, Prio: prio, joined: make(chan struct{})}
	go func() {
		defer close(t.joined)
		runtime.LockOSThread()
		t.TID = unix.Gettid()
		if err := SetFIFOPriority(prio); err != nil {
			glog.Warningf("task %d: no SCHED_FIFO prio %d, running time-shared: %v", id, prio, err)
		}
		fn(t)
	}()
	return t
}

// Join waits for the task function to return.
func (t *Task) Join() {
	<-t.joined
}
