package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/bundlestats/internal/adapters/npm"
	"github.com/renato0307/bundlestats/internal/config"
	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/services"
)

// Flag defaults that settings.json may override
const (
	defaultLogFormat   = "json"
	defaultMaxLogFiles = 1000
	defaultPollSeconds = 60
	defaultRepoDir     = "."
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging" short:"d" env:"BUNDLESTATS_DEBUG"`
	LogDir      string           `help:"Write logs to rotated files in this directory" env:"BUNDLESTATS_LOG_DIR"`
	LogFile     string           `help:"Write logs to this file (disables rotation)" env:"BUNDLESTATS_LOG_FILE"`
	LogFormat   string           `help:"Log format" enum:"json,text" default:"json" env:"BUNDLESTATS_LOG_FORMAT"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"BUNDLESTATS_MAX_LOG_FILES"`

	ArchiveURL     string `help:"Blob bucket URL for stats artifacts (s3://, gs://, file://, mem://)" env:"BUNDLESTATS_ARCHIVE_URL"`
	BatchSize      int    `help:"Pushes per poll (0 = all pending)" default:"0" env:"BUNDLESTATS_BATCH_SIZE"`
	BuildCommand   string `help:"Production build command line" env:"BUNDLESTATS_BUILD_COMMAND"`
	BundleDir      string `help:"Directory holding emitted bundles (default: <repo-dir>/public)" env:"BUNDLESTATS_BUNDLE_DIR"`
	CleanCommand   string `help:"Cleanup command line" env:"BUNDLESTATS_CLEAN_COMMAND"`
	Database       string `help:"SQLite path or postgres:// DSN (default: $BUNDLESTATS_HOME/state.db)" env:"BUNDLESTATS_DATABASE"`
	InstallCommand string `help:"Dependency install command line" env:"BUNDLESTATS_INSTALL_COMMAND"`
	PollInterval   int    `help:"Seconds to wait after an empty poll" default:"60" env:"BUNDLESTATS_POLL_INTERVAL"`
	RepoDir        string `help:"Working copy of the repository to build" default:"." env:"BUNDLESTATS_REPO_DIR"`
	StatsDir       string `help:"Directory for stats and chart artifacts (default: $BUNDLESTATS_HOME/stats)" env:"BUNDLESTATS_STATS_DIR"`
	TrunkBranch    string `help:"Branch whose pushes need no ancestor" default:"master" env:"BUNDLESTATS_TRUNK_BRANCH"`
	TrunkRef       string `help:"Ref feature branches are compared against" default:"origin/master" env:"BUNDLESTATS_TRUNK_REF"`

	Work     WorkCmd     `cmd:"work" help:"Drain the push queue (default)" default:"1"`
	Pushes   PushesCmd   `cmd:"pushes" help:"Manage queued pushes (add, list, view)"`
	Analyze  AnalyzeCmd  `cmd:"analyze" help:"Print chunk sizes from a stats artifact without storing them"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and available options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	logCloser io.Closer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()
	c.applyDefaults()

	closer, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		Dir:         c.LogDir,
		File:        c.LogFile,
		Format:      c.LogFormat,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}
	c.logCloser = closer

	// Create container AFTER logging is initialized so GORM's logger has somewhere to write
	container, err := NewContainer(c.containerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings applies settings.json with precedence CLI flags > env vars > settings.json > defaults.
// A setting is only applied if the flag is at its default value and its env var is not set.
func (c *CLI) applySettings() {
	s := c.settings
	if s == nil {
		return
	}

	applyString(&c.ArchiveURL, "", "BUNDLESTATS_ARCHIVE_URL", s.ArchiveURL)
	applyString(&c.BuildCommand, "", "BUNDLESTATS_BUILD_COMMAND", s.BuildCommand)
	applyString(&c.BundleDir, "", "BUNDLESTATS_BUNDLE_DIR", s.BundleDir)
	applyString(&c.CleanCommand, "", "BUNDLESTATS_CLEAN_COMMAND", s.CleanCommand)
	applyString(&c.Database, "", "BUNDLESTATS_DATABASE", s.Database)
	applyString(&c.InstallCommand, "", "BUNDLESTATS_INSTALL_COMMAND", s.InstallCommand)
	applyString(&c.LogFormat, defaultLogFormat, "BUNDLESTATS_LOG_FORMAT", s.LogFormat)
	applyString(&c.RepoDir, defaultRepoDir, "BUNDLESTATS_REPO_DIR", s.RepoDir)
	applyString(&c.StatsDir, "", "BUNDLESTATS_STATS_DIR", s.StatsDir)
	applyString(&c.TrunkBranch, domain.DefaultTrunkBranch, "BUNDLESTATS_TRUNK_BRANCH", s.TrunkBranch)
	applyString(&c.TrunkRef, services.DefaultTrunkRef, "BUNDLESTATS_TRUNK_REF", s.TrunkRef)

	applyInt(&c.BatchSize, 0, "BUNDLESTATS_BATCH_SIZE", s.BatchSize)
	applyInt(&c.MaxLogFiles, defaultMaxLogFiles, "BUNDLESTATS_MAX_LOG_FILES", s.MaxLogFiles)
	applyInt(&c.PollInterval, defaultPollSeconds, "BUNDLESTATS_POLL_INTERVAL", s.PollIntervalSeconds)

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("BUNDLESTATS_DEBUG"); !hasEnv {
			if s.Debug != nil && *s.Debug {
				c.Debug = true
			}
		}
	}
}

// applyDefaults fills in the defaults that depend on other values
func (c *CLI) applyDefaults() {
	c.RepoDir = config.ExpandPath(c.RepoDir)
	if c.Database == "" {
		c.Database = config.GetDBPath()
	}
	if c.StatsDir == "" {
		c.StatsDir = config.GetStatsDir()
	}
	if c.BundleDir == "" {
		c.BundleDir = filepath.Join(c.RepoDir, "public")
	}
}

func (c *CLI) containerConfig() ContainerConfig {
	return ContainerConfig{
		ArchiveURL:  c.ArchiveURL,
		BundleDir:   c.BundleDir,
		Database:    c.Database,
		Debug:       c.Debug,
		TrunkBranch: c.TrunkBranch,
		Build: npm.BuildConfig{
			BuildCommand:   c.BuildCommand,
			CleanCommand:   c.CleanCommand,
			InstallCommand: c.InstallCommand,
			RepoDir:        c.RepoDir,
		},
		Worker: services.QueueWorkerConfig{
			BatchSize:    c.BatchSize,
			PollInterval: time.Duration(c.PollInterval) * time.Second,
			StatsDir:     c.StatsDir,
			TrunkBranch:  c.TrunkBranch,
			TrunkRef:     c.TrunkRef,
		},
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	var err error
	if c.Container != nil {
		err = c.Container.Close()
	}
	if c.logCloser != nil {
		c.logCloser.Close()
	}
	return err
}

func applyString(field *string, def, envVar, value string) {
	if *field != def || value == "" {
		return
	}
	if _, hasEnv := os.LookupEnv(envVar); hasEnv {
		return
	}
	*field = value
}

func applyInt(field *int, def int, envVar string, value *int) {
	if *field != def || value == nil {
		return
	}
	if _, hasEnv := os.LookupEnv(envVar); hasEnv {
		return
	}
	*field = *value
}
