package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
)

const (
	// DefaultGracePeriod is how long an interrupted process group gets before it is killed
	DefaultGracePeriod = 10 * time.Second
	// DefaultOutputLimit bounds the diagnostic output kept for a failed command
	DefaultOutputLimit = 16 * 1024
)

// ExecRunner implements ports.CommandRunner using os/exec
type ExecRunner struct {
	gracePeriod time.Duration
	outputLimit int
}

// Compile-time interface verification
var _ ports.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		gracePeriod: DefaultGracePeriod,
		outputLimit: DefaultOutputLimit,
	}
}

// Run executes the command and waits for it to finish.
// The context is only honoured for shutdown: cancelling it interrupts the whole process group.
func (r *ExecRunner) Run(ctx context.Context, c ports.Command) (ports.CommandResult, error) {
	commandLine := FormatCommandLine(c.Name, c.Args)
	logging.Logger.Info("Executing command", "command", commandLine, "dir", displayDir(c.Dir))

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = mergeEnv(os.Environ(), c.Env)
	cmd.WaitDelay = r.gracePeriod
	configureProcessGroup(cmd)

	stderr := newTailBuffer(r.outputLimit)
	cmd.Stderr = stderr

	var stdout bytes.Buffer
	switch {
	case c.StdoutPath != "":
		f, err := os.Create(c.StdoutPath)
		if err != nil {
			return ports.CommandResult{}, &domain.CommandError{
				Command:   commandLine,
				Dir:       c.Dir,
				ExitCode:  -1,
				LaunchErr: fmt.Errorf("failed to create stdout file: %w", err),
			}
		}
		defer f.Close()
		cmd.Stdout = f
	case c.CaptureStdout:
		cmd.Stdout = &stdout
	}

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logging.Logger.Warn("Command interrupted", "command", commandLine, "duration", elapsed)
			return ports.CommandResult{}, fmt.Errorf("%s interrupted: %w", commandLine, ctxErr)
		}

		cmdErr := &domain.CommandError{
			Command:  commandLine,
			Dir:      c.Dir,
			ExitCode: -1,
			Output:   stderr.String(),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		} else {
			cmdErr.LaunchErr = err
		}

		logging.Logger.Warn("Command failed",
			"command", commandLine,
			"exit_code", cmdErr.ExitCode,
			"launch_failure", cmdErr.IsLaunchFailure(),
			"duration", elapsed)
		return ports.CommandResult{}, cmdErr
	}

	logging.Logger.Debug("Command finished", "command", commandLine, "duration", elapsed)

	if c.CaptureStdout && c.StdoutPath == "" {
		return ports.CommandResult{Stdout: strings.TrimSpace(stdout.String())}, nil
	}
	return ports.CommandResult{}, nil
}

// FormatCommandLine renders a command for logs and errors, quoting arguments that need it
func FormatCommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{name}, args...) {
		if p == "" || strings.ContainsAny(p, " \t\n\"'") {
			p = strconv.Quote(p)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// mergeEnv returns environ with overrides applied; overridden keys are replaced, not duplicated
func mergeEnv(environ []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return environ
	}

	merged := make([]string, 0, len(environ)+len(overrides))
	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		merged = append(merged, kv)
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+overrides[k])
	}
	return merged
}

func displayDir(dir string) string {
	if dir != "" {
		return dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// tailBuffer keeps the last limit bytes written to it
type tailBuffer struct {
	buf   []byte
	limit int
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}
