package principles

import "strings"

// Level is the severity of a check verdict.
type Level string

const (
	// LevelPass indicates no findings.
	LevelPass Level = "PASS"

	// LevelInfo indicates informational findings only. Inability to
	// check (load failure) is also reported at this level: the checks
	// fail open rather than block a release pipeline.
	LevelInfo Level = "INFO"

	// LevelWarn indicates findings that should be addressed.
	LevelWarn Level = "WARN"

	// LevelError indicates findings that violate the principle.
	LevelError Level = "ERROR"
)

// rank orders levels for aggregation; higher is worse.
func (l Level) rank() int {
	switch l {
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return 0
	}
}

// WorseThan reports whether l is more severe than other.
func (l Level) WorseThan(other Level) bool {
	return l.rank() > other.rank()
}

// Verdict is the outcome of one principle check on one namespace.
// Violations are domain-level findings, not software failures: a check
// that runs to completion always produces a Verdict, never an error.
type Verdict struct {
	// Level is the verdict severity.
	Level Level

	// Messages are the human-readable findings, in summary form.
	Messages []string
}

// Pass returns the passing verdict.
func Pass() Verdict {
	return Verdict{Level: LevelPass}
}

// Info returns an informational verdict with the given messages.
func Info(messages ...string) Verdict {
	return Verdict{Level: LevelInfo, Messages: messages}
}

// Warn returns a warning verdict with the given messages.
func Warn(messages ...string) Verdict {
	return Verdict{Level: LevelWarn, Messages: messages}
}

// Error returns an error verdict with the given messages.
func Error(messages ...string) Verdict {
	return Verdict{Level: LevelError, Messages: messages}
}

// IsPass reports whether the verdict is a clean pass.
func (v Verdict) IsPass() bool {
	return v.Level == LevelPass || v.Level == ""
}

// String encodes the verdict in the dashboard's string form: "PASS" for
// a clean pass, otherwise "LEVEL|message" with messages joined by "; ".
func (v Verdict) String() string {
	if v.IsPass() {
		return string(LevelPass)
	}
	return string(v.Level) + "|" + strings.Join(v.Messages, "; ")
}
