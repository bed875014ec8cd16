package rt

import "golang.org/x/sys/unix"

// AffinityCPUs returns the CPUs the calling thread may run on, ascending.
func AffinityCPUs() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, err
	}
	n := set.Count()
	cpus := make([]int, 0, n)
	for i := 0; i < len(set)*64 && len(cpus) < n; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus, nil
}

// PinCPU restricts the calling thread to a single CPU. The caller must be
// locked to its OS thread.
func PinCPU(cpu int) error {
	var set unix.CPUSet
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}
