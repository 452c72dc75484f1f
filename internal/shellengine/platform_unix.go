//go:build !windows

package shellengine

import "os"

const pathListSeparator = ':'

// platformDefaultShell returns the Config.Command default: an interactive
// POSIX shell ("sh -i" on Unix, "cmd" on Windows).
func platformDefaultShell() []string {
	return []string{"sh", "-i"}
}

func envPath() string {
	return os.Getenv("PATH")
}
