//go:build windows

package shellengine

import "os"

const pathListSeparator = ';'

// platformDefaultShell returns the Config.Command default on Windows: cmd.
func platformDefaultShell() []string {
	return []string{"cmd"}
}

func envPath() string {
	return os.Getenv("Path")
}
