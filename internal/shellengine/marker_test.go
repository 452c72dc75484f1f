package shellengine

import (
	"testing"

	"github.com/slowli/term-transcript/internal/transcript"
)

func TestNewMarkerIsUniquePerEngine(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		m, err := newMarker()
		if err != nil {
			t.Fatalf("newMarker: %v", err)
		}
		if seen[m] {
			t.Fatalf("duplicate marker %q after %d draws", m, i)
		}
		seen[m] = true
	}
}

func TestLookupProfileByPath(t *testing.T) {
	cases := map[string]string{
		"sh":                  "sh",
		"/bin/bash":           "bash",
		"/usr/local/bin/pwsh": "pwsh",
		`C:\Windows\cmd.exe`:  "cmd",
		"POWERSHELL.EXE":      "powershell",
	}
	for in, want := range cases {
		p, ok := lookupProfile(in)
		if !ok {
			t.Errorf("lookupProfile(%q): not found", in)
			continue
		}
		if p.Name != want {
			t.Errorf("lookupProfile(%q) = %q, want %q", in, p.Name, want)
		}
	}
	if _, ok := lookupProfile("fish"); ok {
		t.Error("expected no profile for an unrecognized shell")
	}
}

func TestParseDigitsTail(t *testing.T) {
	cases := []struct {
		tail   string
		status transcript.ExitStatus
		ok     bool
	}{
		{"0", 0, true},
		{"1\r", 1, true},
		{"-1", -1, true},
		{"127 trailing", 127, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, c := range cases {
		status, ok := parseDigitsTail(c.tail)
		if ok != c.ok || status != c.status {
			t.Errorf("parseDigitsTail(%q) = (%d, %v), want (%d, %v)", c.tail, status, ok, c.status, c.ok)
		}
	}
}

func TestPosixEndMarkerLine(t *testing.T) {
	p, _ := lookupProfile("bash")
	if got, want := p.EndMarkerLine("tt-abc"), "echo tt-abc$?"; got != want {
		t.Errorf("EndMarkerLine = %q, want %q", got, want)
	}
}
