package shellengine

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/slowli/term-transcript/internal/transcript"
)

// newMarker generates the per-engine nonce: >=64 bits of entropy,
// hex-encoded so it is safe to embed literally in any shell's command
// syntax without quoting concerns.
func newMarker() (string, error) {
	buf := make([]byte, 12) // 96 bits
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("shellengine: generating marker: %w", err)
	}
	return "tt-" + hex.EncodeToString(buf), nil
}

// ExitStatusSupport selects whether the engine knows how to extract a
// per-command exit status from the configured shell.
type ExitStatusSupport int

const (
	// ExitStatusNone never attempts extraction.
	ExitStatusNone ExitStatusSupport = iota
	// ExitStatusKnownShell uses the shellProfile matching Config.ShellName.
	ExitStatusKnownShell
)

// shellProfile supplies the end-marker command line for a recognized
// shell and a tail parser that pulls the exit status (and nothing else)
// back out of the line the shell printed for it.
type shellProfile struct {
	Name string
	// EndMarkerLine returns the command text to submit after a user
	// input, whose output is exactly "<marker><status-token>".
	EndMarkerLine func(marker string) string
	// ParseTail parses the text following marker on the marker's output
	// line into an ExitStatus. Returns ok=false if it cannot be parsed
	// (the caller then records no exit status rather than fail).
	ParseTail func(tail string) (status transcript.ExitStatus, ok bool)
}

var shellProfiles = map[string]shellProfile{
	"sh":   posixProfile("sh"),
	"bash": posixProfile("bash"),
	"powershell": {
		Name: "powershell",
		EndMarkerLine: func(marker string) string {
			return fmt.Sprintf(`Write-Host "%s$(if ($?) { 0 } else { 1 })"`, marker)
		},
		ParseTail: parseDigitsTail,
	},
	"pwsh": {
		Name: "pwsh",
		EndMarkerLine: func(marker string) string {
			return fmt.Sprintf(`Write-Host "%s$(if ($?) { 0 } else { 1 })"`, marker)
		},
		ParseTail: parseDigitsTail,
	},
	"cmd": {
		Name: "cmd",
		EndMarkerLine: func(marker string) string {
			return fmt.Sprintf("echo %s%%errorlevel%%", marker)
		},
		ParseTail: parseDigitsTail,
	},
}

func posixProfile(name string) shellProfile {
	return shellProfile{
		Name: name,
		EndMarkerLine: func(marker string) string {
			return fmt.Sprintf("echo %s$?", marker)
		},
		ParseTail: parseDigitsTail,
	}
}

// parseDigitsTail reads a run of leading ASCII digits (with an optional
// leading '-') off tail as the exit status; anything else on the line is
// ignored (trailing CR from CRLF shells, in particular).
func parseDigitsTail(tail string) (transcript.ExitStatus, bool) {
	tail = strings.TrimRight(tail, "\r\n")
	end := 0
	for end < len(tail) && (tail[end] == '-' || (tail[end] >= '0' && tail[end] <= '9')) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(tail[:end])
	if err != nil {
		return 0, false
	}
	return transcript.ExitStatus(n), true
}

// lookupProfile resolves a shellProfile by the configured shell name.
// The name may be a full path ("/bin/bash", `C:\...\pwsh.exe`); only the
// base name decides the recipe.
func lookupProfile(name string) (shellProfile, bool) {
	base := filepath.Base(name)
	if i := strings.LastIndexByte(base, '\\'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(strings.ToLower(base), ".exe")
	p, ok := shellProfiles[base]
	return p, ok
}
