package cmd

import (
	"context"
	"errors"

	"github.com/renato0307/bundlestats/internal/adapters/archive"
	"github.com/renato0307/bundlestats/internal/adapters/git"
	"github.com/renato0307/bundlestats/internal/adapters/metrics"
	"github.com/renato0307/bundlestats/internal/adapters/npm"
	"github.com/renato0307/bundlestats/internal/adapters/process"
	"github.com/renato0307/bundlestats/internal/adapters/storage"
	"github.com/renato0307/bundlestats/internal/adapters/webpack"
	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
	"github.com/renato0307/bundlestats/internal/services"
)

// ContainerConfig holds what NewContainer needs to wire the adapters
type ContainerConfig struct {
	ArchiveURL  string
	BundleDir   string
	Database    string
	Debug       bool
	TrunkBranch string
	Build       npm.BuildConfig
	Worker      services.QueueWorkerConfig
}

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Analyzer   *webpack.Analyzer
	Archiver   ports.ArtifactArchiver
	Builder    *npm.Executor
	Observer   *metrics.Observer
	Repository ports.PushRepository
	Revisions  *git.CLIRevisionController

	// Services
	Worker *services.QueueWorker
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg ContainerConfig) (*Container, error) {
	repo, err := storage.NewRepository(cfg.Database, cfg.Debug)
	if err != nil {
		return nil, err
	}

	runner := process.NewExecRunner()
	builder, err := npm.NewExecutor(runner, cfg.Build)
	if err != nil {
		repo.Close()
		return nil, err
	}

	var archiver ports.ArtifactArchiver = archive.NoopArchiver{}
	if cfg.ArchiveURL != "" {
		archiver, err = archive.NewBlobArchiver(context.Background(), cfg.ArchiveURL)
		if err != nil {
			repo.Close()
			return nil, err
		}
	}

	analyzer := webpack.NewAnalyzer(cfg.BundleDir)
	observer := metrics.NewObserver(cfg.TrunkBranch)
	revisions := git.NewCLIRevisionController(runner, cfg.Build.RepoDir)

	worker := services.NewQueueWorker(repo, revisions, builder, analyzer, archiver, observer, cfg.Worker)

	logging.Logger.Debug("Container initialized",
		"repo_dir", cfg.Build.RepoDir,
		"bundle_dir", cfg.BundleDir,
		"archive", cfg.ArchiveURL != "")

	return &Container{
		Analyzer:   analyzer,
		Archiver:   archiver,
		Builder:    builder,
		Observer:   observer,
		Repository: repo,
		Revisions:  revisions,
		Worker:     worker,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.Archiver != nil {
		errs = append(errs, c.Archiver.Close())
	}
	if c.Repository != nil {
		errs = append(errs, c.Repository.Close())
	}
	return errors.Join(errs...)
}
