// Package env reads the environment knobs honored by every test binary.
package env

import "os"

var (
	// Colorize turns on colored result lines (LTP_COLORIZE=y).
	Colorize = GetEnvBool("LTP_COLORIZE", false)

	// TempDir is where tests place scratch directories.
	TempDir = GetEnv("TMPDIR", "/tmp")
)

func GetEnv(name, defval string) string {
	if r := os.Getenv(name); r != "" {
		return r
	}
	return defval
}

func GetEnvBool(name string, defval bool) bool {
	switch GetEnv(name, "") {
	case "y", "yes", "1", "true":
		return true
	case "n", "no", "0", "false":
		return false
	}
	return defval
}
