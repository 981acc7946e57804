package cli

import (
	"fmt"
	"strings"
)

// PreflightError is a user-facing error with guidance on how to recover.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
	Err      error
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s", e.Hint)
	}
	if e.NextStep != "" {
		fmt.Fprintf(&b, "\nNext: %s", e.NextStep)
	}
	return b.String()
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}
