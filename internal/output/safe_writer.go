package output

import "io"

// SafeTerminalWriter sanitizes all bytes written to it so the output is safe
// to display in an interactive terminal. The logger writes through it because
// warnings quote fd entry names and link targets we don't control.
type SafeTerminalWriter struct {
	W io.Writer
}

func (w SafeTerminalWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	_, err := io.WriteString(w.W, SanitizeTerminal(string(p)))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func NewSafeTerminalWriter(w io.Writer) io.Writer {
	return SafeTerminalWriter{W: w}
}
