package plugin

import (
	"fmt"
	"io"
)

// Status is the four-state outcome of a check. Its integer value is the
// process exit code expected by Nagios-compatible schedulers.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the status onto the plugin exit code convention
// (0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN).
func (s Status) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return int(StatusUnknown)
	}
	return int(s)
}

// Reporter owns the output contract: exactly one status line on its writer.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report writes "<STATUS> - <message>" and returns the exit code for the
// caller to hand to os.Exit. Every terminal outcome goes through here.
func (r *Reporter) Report(status Status, format string, args ...any) int {
	fmt.Fprintf(r.out, "%s - %s\n", status, fmt.Sprintf(format, args...))
	return status.ExitCode()
}
