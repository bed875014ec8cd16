package xattr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/Martchus/ltp/tst"
)

// Getxattr02 checks getxattr(2) on files that cannot carry user
// attributes: in the user.* namespace only regular files and directories
// do, every other file type answers ENODATA. Device nodes need root.
type Getxattr02 struct {
	// Dir is the scratch directory, as in Getxattr01.
	Dir string

	created string
	nodes   []specialNode
}

type specialNode struct {
	kind string
	path string
	mk   func(path string) error
}

func (g *Getxattr02) Setup(h *tst.T) error {
	dir, created, err := scratchDir(g.Dir, "getxattr02")
	if err != nil {
		return err
	}
	g.created = created

	if err := Supported(dir); err != nil {
		if errors.Is(err, unix.ENOTSUP) {
			return tst.Skipf("no xattr support in filesystem")
		}
		return fmt.Errorf("xattr support probe: %w", err)
	}

	g.nodes = []specialNode{
		{kind: "fifo", path: filepath.Join(dir, "getxattr02fifo"), mk: func(p string) error {
			return unix.Mkfifo(p, 0777)
		}},
		{kind: "char special", path: filepath.Join(dir, "getxattr02chr"), mk: func(p string) error {
			return unix.Mknod(p, unix.S_IFCHR|0777, int(unix.Mkdev(1, 3)))
		}},
		{kind: "block special", path: filepath.Join(dir, "getxattr02blk"), mk: func(p string) error {
			return unix.Mknod(p, unix.S_IFBLK|0777, 0)
		}},
		{kind: "socket", path: filepath.Join(dir, "getxattr02sock"), mk: func(p string) error {
			return unix.Mknod(p, unix.S_IFSOCK|0777, 0)
		}},
	}
	for _, n := range g.nodes {
		if err := n.mk(n.path); err != nil {
			return fmt.Errorf("create %s %s: %w", n.kind, n.path, err)
		}
	}
	return nil
}

func (g *Getxattr02) Run(h *tst.T) error {
	for _, n := range g.nodes {
		_, err := Get(n.path, testKey, bufSize)
		if errors.Is(err, unix.ENODATA) {
			h.Passf("getxattr() on %s returned %s as expected", n.kind, tst.Errno(err))
		} else {
			h.Failf("getxattr() on %s returned %s, expected ENODATA", n.kind, tst.Errno(err))
		}
	}
	return nil
}

func (g *Getxattr02) Cleanup(*tst.T) {
	for _, n := range g.nodes {
		os.Remove(n.path)
	}
	if g.created != "" {
		os.RemoveAll(g.created)
	}
}
