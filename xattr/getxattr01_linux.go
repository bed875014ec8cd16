package xattr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/Martchus/ltp/env"
	"github.com/Martchus/ltp/tst"
)

const (
	testKey   = "user.testkey"
	testValue = "this is a test value"
	bufSize   = 64
)

// Getxattr01 checks the basic getxattr(2) contract on a regular file: a
// missing key fails with ENODATA, an undersized buffer with ERANGE, and
// a large enough buffer returns exactly the value set before.
type Getxattr01 struct {
	// Dir is the scratch directory. Empty means a disposable one under
	// TMPDIR that Cleanup removes again.
	Dir string

	path    string
	created string
}

// scratchDir returns dir, or creates a disposable one under env.TempDir;
// the second return is non-empty when the caller owns the removal.
func scratchDir(dir, prefix string) (string, string, error) {
	if dir != "" {
		return dir, "", nil
	}
	d, err := os.MkdirTemp(env.TempDir, prefix+".*")
	if err != nil {
		return "", "", err
	}
	return d, d, nil
}

func (g *Getxattr01) Setup(h *tst.T) error {
	dir, created, err := scratchDir(g.Dir, "getxattr01")
	if err != nil {
		return err
	}
	g.created = created
	g.path = filepath.Join(dir, "getxattr01testfile")
	if err := os.WriteFile(g.path, nil, 0644); err != nil {
		return err
	}
	if err := SetString(g.path, testKey, testValue); err != nil {
		if errors.Is(err, unix.ENOTSUP) {
			return tst.Skipf("no xattr support in filesystem")
		}
		return fmt.Errorf("setxattr %s: %w", g.path, err)
	}
	return nil
}

func (g *Getxattr01) Run(h *tst.T) error {
	tcases := []struct {
		key     string
		size    int
		wantErr error
	}{
		// Non-existing attribute.
		{key: "user.nosuchkey", size: bufSize - 1, wantErr: unix.ENODATA},
		// Buffer smaller than the value.
		{key: testKey, size: 1, wantErr: unix.ERANGE},
		// Buffer large enough.
		{key: testKey, size: bufSize - 1},
	}

	for _, tc := range tcases {
		val, err := Get(g.path, tc.key, tc.size)

		ok := err == nil
		if tc.wantErr != nil {
			ok = errors.Is(err, tc.wantErr)
		}
		if !ok {
			h.Failf("getxattr(%s, buf[%d]) returned %s, expected %s",
				tc.key, tc.size, tst.Errno(err), tst.Errno(tc.wantErr))
			continue
		}
		h.Passf("getxattr(%s, buf[%d]) returned %s as expected",
			tc.key, tc.size, tst.Errno(err))
		if tc.wantErr != nil {
			continue
		}

		// Verify the value round-trips for the success case.
		if len(val) != len(testValue) {
			h.Failf("getxattr() returned %d bytes, expected %d", len(val), len(testValue))
		} else {
			h.Passf("getxattr() returned %d bytes", len(val))
		}
		if string(val) != testValue {
			h.Failf("wrong value, expected %q got %q", testValue, val)
		} else {
			h.Passf("right value")
		}
	}
	return nil
}

func (g *Getxattr01) Cleanup(*tst.T) {
	if g.path != "" {
		os.Remove(g.path)
	}
	if g.created != "" {
		os.RemoveAll(g.created)
	}
}
