// Package xattr exercises the extended-attribute syscalls.
package xattr

import (
	"os"

	"golang.org/x/sys/unix"
)

// Get reads the named attribute of path into a buffer of exactly size
// bytes, so callers control the ERANGE behavior.
func Get(path, name string, size int) ([]byte, error) {
	buf := make([]byte, size)
	n, err := unix.Getxattr(path, name, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// GetString reads the named attribute, asking the kernel for the value
// size first.
func GetString(path, name string) (string, error) {
	sz, err := unix.Getxattr(path, name, nil)
	if err != nil {
		return "", err
	}
	buf := make([]byte, sz)
	n, err := unix.Getxattr(path, name, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

func SetString(path, name, value string) error {
	return unix.Setxattr(path, name, []byte(value), 0)
}

// Supported probes the filesystem holding dir for user-namespace
// attribute support. The error is ENOTSUP on filesystems without it.
func Supported(dir string) error {
	f, err := os.CreateTemp(dir, "xattrprobe.*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)
	return unix.Setxattr(name, "user.test", []byte("test"), unix.XATTR_CREATE)
}
