package rtmigrate

// runSample is one task's metrics for a single run: start offset and
// busy-loop end offset from the run epoch in microseconds, and the loop
// count.
type runSample struct {
	start  int64
	length int64
	loops  int64
}

// violation reports whether a run's start times break priority ordering.
// Samples are ordered by ascending task id, which is ascending priority.
// A later task starting more than maxErr after its predecessor is a
// candidate violation; it is dismissed as a false positive when the gap
// has an innocent explanation: the task completed fewer loops (so it was
// preempted and legitimately finished, not started, late), it started
// only after the predecessor's recorded end, or the two recorded ends are
// more than maxErr apart. Anything else is a confirmed violation.
func violation(samples []runSample, maxErr int64) bool {
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if cur.start-prev.start <= maxErr {
			continue
		}
		falsePositive := cur.loops < prev.loops ||
			cur.start > prev.length ||
			abs64(cur.length-prev.length) > maxErr
		if !falsePositive {
			return true
		}
	}
	return false
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
