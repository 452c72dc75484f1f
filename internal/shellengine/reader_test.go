package shellengine

import "testing"

const testMarker = "tt-0123456789abcdef01234567"

func TestSplitInteractionOutputPlain(t *testing.T) {
	raw := "Hello\n" + testMarker + "0\n"
	body, tail := splitInteractionOutput(raw, "echo Hello", "echo "+testMarker+"$?", testMarker, false)
	if body != "Hello" {
		t.Errorf("body = %q, want %q", body, "Hello")
	}
	if tail != "0" {
		t.Errorf("tail = %q, want %q", tail, "0")
	}
}

func TestSplitInteractionOutputStripsEcho(t *testing.T) {
	markerCmd := "echo " + testMarker + "$?"
	raw := "echo Hello\nHello\n" + markerCmd + "\n" + testMarker + "1\n"
	body, tail := splitInteractionOutput(raw, "echo Hello", markerCmd, testMarker, true)
	if body != "Hello" {
		t.Errorf("body = %q, want %q", body, "Hello")
	}
	if tail != "1" {
		t.Errorf("tail = %q, want %q", tail, "1")
	}
}

func TestSplitInteractionOutputPromptPrefixedEcho(t *testing.T) {
	// A PTY echoes the input after the shell's prompt; the marker line can
	// carry a prompt prefix too when stderr is merged.
	markerCmd := "echo " + testMarker + "$?"
	raw := "$ echo hi\nhi\n$ " + markerCmd + "\n$ " + testMarker + "0\n"
	body, tail := splitInteractionOutput(raw, "echo hi", markerCmd, testMarker, true)
	if body != "hi" {
		t.Errorf("body = %q, want %q", body, "hi")
	}
	if tail != "0" {
		t.Errorf("tail = %q, want %q", tail, "0")
	}
}

func TestSplitInteractionOutputCRLF(t *testing.T) {
	raw := "line one\r\nline two\r\n" + testMarker + "0\r\n"
	body, _ := splitInteractionOutput(raw, "type file", "echo "+testMarker+"%errorlevel%", testMarker, false)
	if body != "line one\nline two" {
		t.Errorf("body = %q, want two clean lines", body)
	}
}

func TestSplitInteractionOutputMissingMarker(t *testing.T) {
	raw := "partial output with no marker\n"
	body, tail := splitInteractionOutput(raw, "cmd", "echo "+testMarker+"$?", testMarker, false)
	if body != "partial output with no marker\n" && body != "partial output with no marker" {
		t.Errorf("body = %q, want the raw output preserved", body)
	}
	if tail != "" {
		t.Errorf("tail = %q, want empty when no marker was seen", tail)
	}
}

func TestContainsMarkerLine(t *testing.T) {
	markerCmd := "echo " + testMarker + "$?"
	if containsMarkerLine("output\n"+testMarker, testMarker, markerCmd) {
		t.Error("marker without a trailing newline must not match yet")
	}
	if !containsMarkerLine("output\n"+testMarker+"0\n", testMarker, markerCmd) {
		t.Error("marker with status and newline must match")
	}
	if !containsMarkerLine("$ "+testMarker+"0\n", testMarker, markerCmd) {
		t.Error("prompt-prefixed marker line must match")
	}
	if containsMarkerLine("no marker here\n", testMarker, markerCmd) {
		t.Error("absent marker must not match")
	}
}

func TestContainsMarkerLineSkipsEchoedCommand(t *testing.T) {
	markerCmd := "echo " + testMarker + "$?"
	if containsMarkerLine("output\n"+markerCmd+"\n", testMarker, markerCmd) {
		t.Error("the echoed marker command must not count as the marker's output")
	}
	if containsMarkerLine("$ "+markerCmd+"\n", testMarker, markerCmd) {
		t.Error("a prompt-prefixed echoed marker command must not count either")
	}
	if !containsMarkerLine("output\n"+markerCmd+"\n"+testMarker+"0\n", testMarker, markerCmd) {
		t.Error("the real marker line after the echo must match")
	}
}
