package ports

import "context"

// Command describes one external process invocation
type Command struct {
	Args          []string
	CaptureStdout bool              // Return stdout in CommandResult
	Dir           string            // Working directory (empty = current)
	Env           map[string]string // Overrides merged over the parent environment
	Name          string
	StdoutPath    string // Write stdout to this file instead of capturing it
}

// CommandResult is the outcome of a successful command
type CommandResult struct {
	Stdout string // Trimmed stdout when CaptureStdout was set
}

// CommandRunner executes external commands.
// A failure is reported as *domain.CommandError.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}
