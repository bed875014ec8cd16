package rtmigrate

import (
	"bytes"
	"io"
)

const progressChars = 70

// progress is the run-counter bar. It goes to stderr so users still see
// it when they capture the report; each update is a single write so the
// bar does not flicker.
type progress struct {
	w io.Writer
}

func (p progress) update(percent int) {
	if percent > 100 {
		percent = 100
	}
	var b bytes.Buffer
	b.WriteString("\r|")
	for i := 0; i < progressChars; i++ {
		b.WriteByte(' ')
	}
	b.WriteString("|\r|")
	for i := 0; i < progressChars*percent/100; i++ {
		b.WriteByte('-')
	}
	p.w.Write(b.Bytes())
}

func (p progress) finish() {
	io.WriteString(p.w, "\n")
}
