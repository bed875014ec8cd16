package main

import (
	"flag"

	"github.com/Martchus/ltp/tst"
	"github.com/Martchus/ltp/xattr"
)

var scratch = flag.String("d", "", "Scratch directory for the test file (default: a fresh one under TMPDIR)")

func main() {
	var g xattr.Getxattr01
	tst.Main(&tst.Test{
		Name: "getxattr01",
		Setup: func(h *tst.T) error {
			g.Dir = *scratch
			return g.Setup(h)
		},
		Run:     g.Run,
		Cleanup: g.Cleanup,
	})
}
