package npm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"

	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
)

// DefaultNodeHeapMB is the V8 old-space limit given to the bundler
const DefaultNodeHeapMB = 8192

// Default command lines, run from the repository directory
var (
	DefaultInstallCommand = "npm install"
	DefaultBuildCommand   = "npm run -s env -- node --max_old_space_size=" + strconv.Itoa(DefaultNodeHeapMB) +
		" ./node_modules/.bin/webpack --config webpack.config.js --profile --json"
	DefaultCleanCommand = "npm run clean"
)

// BuildConfig holds the command lines used by the executor.
// Empty fields fall back to the defaults above.
type BuildConfig struct {
	BuildCommand   string
	BuildEnv       map[string]string // Defaults to NODE_ENV=production
	CleanCommand   string
	InstallCommand string
	RepoDir        string
}

// Executor implements ports.BuildExecutor by shelling out to npm
type Executor struct {
	build   []string
	clean   []string
	env     map[string]string
	install []string
	repoDir string
	runner  ports.CommandRunner
}

// Verify interface compliance at compile time
var _ ports.BuildExecutor = (*Executor)(nil)

// NewExecutor parses the configured command lines and returns an Executor
func NewExecutor(runner ports.CommandRunner, cfg BuildConfig) (*Executor, error) {
	install, err := parseCommandLine("install", cfg.InstallCommand, DefaultInstallCommand)
	if err != nil {
		return nil, err
	}
	build, err := parseCommandLine("build", cfg.BuildCommand, DefaultBuildCommand)
	if err != nil {
		return nil, err
	}
	clean, err := parseCommandLine("clean", cfg.CleanCommand, DefaultCleanCommand)
	if err != nil {
		return nil, err
	}

	env := cfg.BuildEnv
	if env == nil {
		env = map[string]string{"NODE_ENV": "production"}
	}

	return &Executor{
		build:   build,
		clean:   clean,
		env:     env,
		install: install,
		repoDir: cfg.RepoDir,
		runner:  runner,
	}, nil
}

// InstallDependencies runs the install command
func (e *Executor) InstallDependencies(ctx context.Context) error {
	_, err := e.runner.Run(ctx, e.command(e.install))
	return err
}

// RunProductionBuild runs the build command with the production environment,
// redirecting its stdout into outputPath
func (e *Executor) RunProductionBuild(ctx context.Context, outputPath string) error {
	cmd := e.command(e.build)
	cmd.Env = e.env
	cmd.StdoutPath = outputPath

	if _, err := e.runner.Run(ctx, cmd); err != nil {
		return err
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("build produced no stats artifact: %w", err)
	}
	logging.Logger.Debug("Build stats written", "path", outputPath, "bytes", info.Size())
	return nil
}

// Cleanup removes the artifacts and runs the clean command.
// Every step is attempted; failures are joined.
func (e *Executor) Cleanup(ctx context.Context, artifacts ...string) error {
	var errs []error
	for _, path := range artifacts {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", path, err))
		}
	}

	if _, err := e.runner.Run(ctx, e.command(e.clean)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (e *Executor) command(argv []string) ports.Command {
	return ports.Command{
		Args: argv[1:],
		Dir:  e.repoDir,
		Name: argv[0],
	}
}

func parseCommandLine(kind, line, fallback string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		line = fallback
	}
	argv, err := shlex.Split(line, true)
	if err != nil {
		return nil, fmt.Errorf("invalid %s command %q: %w", kind, line, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("invalid %s command %q: empty", kind, line)
	}
	return argv, nil
}
