package rtmigrate

import "testing"

func TestViolation(t *testing.T) {
	const maxErr = 1000

	cases := []struct {
		name    string
		samples []runSample
		want    bool
	}{
		{
			name: "starts in order",
			samples: []runSample{
				{start: 120, length: 20120, loops: 100000},
				{start: 40, length: 20040, loops: 100200},
				{start: 0, length: 20000, loops: 100400},
			},
			want: false,
		},
		{
			name: "gap within tolerance",
			samples: []runSample{
				{start: 0, length: 20000, loops: 100000},
				{start: 1000, length: 20200, loops: 100000},
			},
			want: false,
		},
		{
			name: "confirmed late start",
			samples: []runSample{
				{start: 0, length: 20000, loops: 100000},
				{start: 5000, length: 20500, loops: 100000},
			},
			want: true,
		},
		{
			name: "dismissed by fewer loops",
			samples: []runSample{
				{start: 0, length: 20000, loops: 100000},
				{start: 5000, length: 20500, loops: 99999},
			},
			want: false,
		},
		{
			name: "dismissed by start past previous end",
			samples: []runSample{
				{start: 0, length: 20000, loops: 100000},
				{start: 20500, length: 20800, loops: 100000},
			},
			want: false,
		},
		{
			name: "dismissed by end gap",
			samples: []runSample{
				{start: 0, length: 20000, loops: 100000},
				{start: 1500, length: 21500, loops: 100000},
			},
			want: false,
		},
		{
			name: "dismissed by end gap, earlier end",
			samples: []runSample{
				{start: 0, length: 20000, loops: 100000},
				{start: 1500, length: 18500, loops: 100000},
			},
			want: false,
		},
		{
			name: "violation in a later pair",
			samples: []runSample{
				{start: 100, length: 20100, loops: 100000},
				{start: 80, length: 20080, loops: 100000},
				{start: 4000, length: 20090, loops: 100000},
			},
			want: true,
		},
		{
			name:    "single task",
			samples: []runSample{{start: 0, length: 20000, loops: 100000}},
			want:    false,
		},
		{
			name:    "no tasks",
			samples: nil,
			want:    false,
		},
	}

	for _, c := range cases {
		if got := violation(c.samples, maxErr); got != c.want {
			t.Errorf("%s: violation() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAbs64(t *testing.T) {
	for _, c := range []struct{ in, want int64 }{{5, 5}, {-5, 5}, {0, 0}} {
		if got := abs64(c.in); got != c.want {
			t.Errorf("abs64(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
