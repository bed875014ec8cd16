package main

import (
	"flag"

	"github.com/Martchus/ltp/tst"
	"github.com/Martchus/ltp/xattr"
)

var scratch = flag.String("d", "", "Scratch directory for the special files (default: a fresh one under TMPDIR)")

func main() {
	var g xattr.Getxattr02
	tst.Main(&tst.Test{
		Name:      "getxattr02",
		NeedsRoot: true,
		Setup: func(h *tst.T) error {
			g.Dir = *scratch
			return g.Setup(h)
		},
		Run:     g.Run,
		Cleanup: g.Cleanup,
	})
}
