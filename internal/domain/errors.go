package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAncestorConflict  = errors.New("ancestor already set to a different revision")
	ErrEmptyMergeBase    = errors.New("merge-base returned no revision")
	ErrInvalidRevision   = errors.New("invalid revision identifier")
	ErrInvalidTransition = errors.New("invalid push state transition")
	ErrMalformedArtifact = errors.New("malformed stats artifact")
	ErrPushExists        = errors.New("push already exists")
	ErrPushNotFound      = errors.New("push not found")
	ErrSequenceConsumed  = errors.New("chunk stat sequence already consumed")
)

// CommandError is returned when an external command cannot be started or exits non-zero
type CommandError struct {
	Command   string // Full command line
	Dir       string // Working directory
	ExitCode  int    // Exit code, -1 when the process never ran
	LaunchErr error  // Set when the executable could not be started
	Output    string // Captured diagnostic output (stderr tail)
}

func (e *CommandError) Error() string {
	var b strings.Builder
	if e.LaunchErr != nil {
		fmt.Fprintf(&b, "%s failed to execute: %v", e.Command, e.LaunchErr)
	} else {
		fmt.Fprintf(&b, "%s exited with code %d", e.Command, e.ExitCode)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		fmt.Fprintf(&b, ": %s", out)
	}
	return b.String()
}

func (e *CommandError) Unwrap() error {
	return e.LaunchErr
}

// IsLaunchFailure reports whether the command never ran (not found, permission denied)
func (e *CommandError) IsLaunchFailure() bool {
	return e.LaunchErr != nil
}

// StageError is a pipeline failure annotated with where it happened
type StageError struct {
	Err   error
	SHA   string
	Stage Stage // Last stage reached before the failing step
	Step  Step
}

func (e *StageError) Error() string {
	return fmt.Sprintf("push %s: %s failed after %s: %v", e.SHA, e.Step, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
