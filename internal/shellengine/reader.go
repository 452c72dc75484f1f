package shellengine

import (
	"context"
	"io"
	"strings"
	"time"
)

// streamPump runs on its own goroutine, continuously reading from the
// transport and handing
// chunks to the main goroutine over a channel. This lets readUntilMarker
// implement an *idle* timeout (reset on every chunk received) without the
// underlying io.Reader supporting read deadlines, which plain os/exec
// pipes do not.
type streamPump struct {
	chunks chan []byte
	done   chan struct{}
	err    error
}

func newStreamPump(r io.Reader) *streamPump {
	p := &streamPump{
		chunks: make(chan []byte, 64),
		done:   make(chan struct{}),
	}
	go p.run(r)
	return p
}

func (p *streamPump) run(r io.Reader) {
	defer close(p.done)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			p.chunks <- chunk
		}
		if err != nil {
			p.err = err
			return
		}
	}
}

// readUntilMarker accumulates chunks from the pump until the buffer
// contains the marker's own output line, or until idleTimeout elapses
// with no new chunk arriving, or ctx is canceled. The idle timer resets
// on every chunk, so io_timeout is measured from the last byte received,
// not from the start of the read. The echoed marker-command line
// ("echo <marker>$?") contains the marker too, so the scan must not stop
// there: the exit-status digits only exist on the line the command
// printed, which arrives after the echo.
func (e *Engine) readUntilMarker(ctx context.Context, idleTimeout time.Duration) (string, error) {
	var buf strings.Builder
	markerCmd := e.endMarkerLine()
	timer := time.NewTimer(idleTimeout)
	defer timer.Stop()

	for {
		if containsMarkerLine(buf.String(), e.marker, markerCmd) {
			return buf.String(), nil
		}
		select {
		case chunk, ok := <-e.pump.chunks:
			if !ok {
				return buf.String(), io.ErrUnexpectedEOF
			}
			buf.Write(chunk)
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(idleTimeout)
		case <-timer.C:
			return buf.String(), context.DeadlineExceeded
		case <-ctx.Done():
			return buf.String(), ctx.Err()
		case <-e.pump.done:
			// Drain any chunks queued before the pump closed, then report
			// EOF only once nothing more is buffered.
			select {
			case chunk := <-e.pump.chunks:
				buf.Write(chunk)
				continue
			default:
			}
			if containsMarkerLine(buf.String(), e.marker, markerCmd) {
				return buf.String(), nil
			}
			return buf.String(), io.ErrUnexpectedEOF
		}
	}
}

// readLineWithDeadline reads until a full line (terminated by '\n') is
// available or deadline elapses, used by the echo-detection sentinel
// during echo detection.
func (e *Engine) readLineWithDeadline(ctx context.Context, deadline time.Duration) (string, error) {
	var buf strings.Builder
	timer := time.NewTimer(deadline)
	defer timer.Stop()

	for {
		if idx := strings.IndexByte(buf.String(), '\n'); idx >= 0 {
			return buf.String()[:idx], nil
		}
		select {
		case chunk, ok := <-e.pump.chunks:
			if !ok {
				return buf.String(), io.ErrUnexpectedEOF
			}
			buf.Write(chunk)
		case <-timer.C:
			return buf.String(), context.DeadlineExceeded
		case <-ctx.Done():
			return buf.String(), ctx.Err()
		case <-e.pump.done:
			return buf.String(), io.ErrUnexpectedEOF
		}
	}
}

// containsMarkerLine reports whether buf holds a complete line carrying
// the marker's output. The marker need not start its line: an interactive
// shell's prompt (on merged stderr) may precede it without a line break.
// A line that is the echoed marker command itself (possibly behind a
// prompt) is not the marker's output and is skipped. Requiring the
// terminating newline guarantees the exit-status tail on the marker's
// line has fully arrived.
func containsMarkerLine(buf, marker, markerCmdLine string) bool {
	for {
		idx := strings.IndexByte(buf, '\n')
		if idx < 0 {
			return false
		}
		line := buf[:idx]
		if strings.Contains(line, marker) && !endsWithCommand(line, markerCmdLine) {
			return true
		}
		buf = buf[idx+1:]
	}
}

// splitInteractionOutput implements step 4 of the per-input algorithm:
// given the raw bytes read up to and including the marker line, strip the
// echoed user input line (if echoing), the echoed marker-command line
// (whenever present), and the marker line itself, leaving only the
// command's real output plus whatever followed the marker on its line
// (the exit-status token, handed back separately for the shellProfile to
// parse).
func splitInteractionOutput(raw, inputLine, markerCmdLine, marker string, echoing bool) (body, tail string) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")

	idx := 0
	if echoing && idx < len(lines) && endsWithCommand(lines[idx], inputLine) {
		idx++
	}

	end := len(lines)
	markerLineIdx := -1
	for i := idx; i < len(lines); i++ {
		// The echoed marker command contains the marker substring; only
		// the line the command printed carries the status digits.
		if strings.Contains(lines[i], marker) && !endsWithCommand(lines[i], markerCmdLine) {
			markerLineIdx = i
			end = i
			break
		}
	}

	bodyLines := lines[idx:end]
	// Drop a trailing echoed marker-command line immediately preceding
	// the marker's own output line, if present.
	if n := len(bodyLines); n > 0 && endsWithCommand(bodyLines[n-1], markerCmdLine) {
		bodyLines = bodyLines[:n-1]
	}

	body = strings.Join(bodyLines, "\n")
	if markerLineIdx >= 0 {
		after := strings.Index(lines[markerLineIdx], marker) + len(marker)
		tail = lines[markerLineIdx][after:]
	}
	return body, tail
}

// endsWithCommand reports whether line is cmd echoed back, possibly with
// a prompt prefix (a PTY echoes "$ echo hi" for the input "echo hi").
func endsWithCommand(line, cmd string) bool {
	return strings.HasSuffix(strings.TrimRight(line, "\r"), cmd)
}
