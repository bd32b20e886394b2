package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
)

const (
	// DefaultPollInterval is the wait after an empty poll
	DefaultPollInterval = 60 * time.Second
	// DefaultTrunkRef is the remote-tracking ref feature branches are compared against
	DefaultTrunkRef = "origin/master"
)

// QueueWorkerConfig holds the worker settings
type QueueWorkerConfig struct {
	BatchSize    int           // Pushes per poll, 0 = all pending
	PollInterval time.Duration // Wait after an empty poll
	StatsDir     string        // Directory for stats and chart artifacts
	TrunkBranch  string        // Branch that needs no ancestor
	TrunkRef     string        // Ref passed to merge-base
}

func (c QueueWorkerConfig) withDefaults() QueueWorkerConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.TrunkBranch == "" {
		c.TrunkBranch = domain.DefaultTrunkBranch
	}
	if c.TrunkRef == "" {
		c.TrunkRef = DefaultTrunkRef
	}
	if c.StatsDir == "" {
		c.StatsDir = "."
	}
	return c
}

// QueueWorker drains the push queue, building and measuring one push at a time
type QueueWorker struct {
	analyzer  ports.BundleAnalyzer
	archiver  ports.ArtifactArchiver
	builder   ports.BuildExecutor
	cfg       QueueWorkerConfig
	logger    *slog.Logger
	observer  ports.PipelineObserver
	queue     ports.PushQueue
	revisions ports.RevisionController
	wait      func(ctx context.Context, d time.Duration) error
}

// NewQueueWorker creates a new QueueWorker.
// archiver and observer may be nil.
func NewQueueWorker(
	queue ports.PushQueue,
	revisions ports.RevisionController,
	builder ports.BuildExecutor,
	analyzer ports.BundleAnalyzer,
	archiver ports.ArtifactArchiver,
	observer ports.PipelineObserver,
	cfg QueueWorkerConfig,
) *QueueWorker {
	if observer == nil {
		observer = nopObserver{}
	}
	return &QueueWorker{
		analyzer:  analyzer,
		archiver:  archiver,
		builder:   builder,
		cfg:       cfg.withDefaults(),
		logger:    logging.Component("queue-worker"),
		observer:  observer,
		queue:     queue,
		revisions: revisions,
		wait:      sleepContext,
	}
}

// Run polls the queue until ctx is cancelled. Cancellation is a clean stop and returns nil.
func (w *QueueWorker) Run(ctx context.Context) error {
	logger := w.logger.With("run_id", uuid.New().String())
	logger.Info("Queue worker started",
		"trunk_branch", w.cfg.TrunkBranch,
		"trunk_ref", w.cfg.TrunkRef,
		"poll_interval", w.cfg.PollInterval,
		"batch_size", w.cfg.BatchSize)

	for {
		if ctx.Err() != nil {
			logger.Info("Queue worker stopped")
			return nil
		}

		handled, err := w.RunOnce(ctx)
		if err != nil {
			logger.Error("Polling the queue failed, retrying after the poll interval", "error", err)
		}
		if handled > 0 {
			continue
		}
		if ctx.Err() != nil {
			continue
		}

		logger.Debug("Queue empty, waiting", "poll_interval", w.cfg.PollInterval)
		if err := w.wait(ctx, w.cfg.PollInterval); err != nil {
			logger.Info("Queue worker stopped")
			return nil
		}
	}
}

// RunOnce processes one batch of pending pushes and returns how many reached the processed state.
// It stops early when ctx is cancelled; the interrupted push stays pending.
func (w *QueueWorker) RunOnce(ctx context.Context) (int, error) {
	pushes, err := w.queue.ListPendingPushes(ctx, w.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending pushes: %w", err)
	}
	w.observer.QueuePolled(len(pushes))
	if len(pushes) > 0 {
		w.logger.Info("Pending pushes found", "count", len(pushes))
	}

	handled := 0
	for _, push := range pushes {
		if ctx.Err() != nil {
			break
		}
		if _, outcome := w.ProcessPush(ctx, push); outcome == domain.OutcomeInterrupted {
			break
		}
		handled++
	}
	return handled, nil
}

// ProcessPush takes one push through the pipeline and records the outcome in the queue
func (w *QueueWorker) ProcessPush(ctx context.Context, push domain.Push) (*domain.PushRun, domain.Outcome) {
	logger := w.logger.With("sha", push.SHA, "branch", push.Branch)
	run := domain.NewPushRun(push)
	start := time.Now()
	logger.Info("Processing push")

	err := w.runPipeline(ctx, run, logger)
	// A push with stored rows is always completed so a retry cannot duplicate them
	if err != nil && ctx.Err() != nil && run.StatsRecorded == 0 {
		logger.Warn("Push interrupted by shutdown, leaving it pending", "stage", run.Stage, "error", err)
		w.observer.PushCompleted(push, domain.OutcomeInterrupted)
		return run, domain.OutcomeInterrupted
	}

	// The outcome is recorded even when shutdown starts right after the last step
	detached := context.WithoutCancel(ctx)
	if err != nil {
		logger.Error("Push pipeline failed", "error", err, "stage", run.Failure.Stage, "step", run.Failure.Step)
		if markErr := w.queue.MarkFailed(detached, push.SHA, *run.Failure); markErr != nil {
			logger.Error("Failed to record push failure", "error", markErr)
		}
	}
	if markErr := w.queue.MarkProcessed(detached, push.SHA); markErr != nil {
		logger.Error("Failed to mark push processed", "error", markErr)
	} else if advErr := run.Advance(domain.StageProcessed); advErr != nil {
		logger.Warn("Unexpected push state", "error", advErr)
	}

	outcome := run.Outcome()
	w.observer.PushCompleted(push, outcome)
	logger.Info("Push processed",
		"outcome", outcome,
		"chunks", run.StatsRecorded,
		"duration", time.Since(start).Round(time.Millisecond),
		"history", run.History)
	return run, outcome
}

// ArtifactPaths returns the stats and chart artifact paths of a push
func (w *QueueWorker) ArtifactPaths(sha string) (statsPath, chartPath string) {
	return filepath.Join(w.cfg.StatsDir, sha+".stats.json"),
		filepath.Join(w.cfg.StatsDir, sha+".chart.json")
}

func (w *QueueWorker) runPipeline(ctx context.Context, run *domain.PushRun, logger *slog.Logger) error {
	sha := run.Push.SHA
	statsPath, chartPath := w.ArtifactPaths(sha)
	defer w.finishArtifacts(ctx, sha, statsPath, chartPath, logger)

	if err := w.step(ctx, run, domain.StepFetch, logger, w.revisions.FetchLatest); err != nil {
		return err
	}

	if err := w.step(ctx, run, domain.StepCheckout, logger, func(ctx context.Context) error {
		return w.revisions.Checkout(ctx, sha)
	}); err != nil {
		return err
	}

	if run.Push.NeedsAncestor(w.cfg.TrunkBranch) {
		if err := w.step(ctx, run, domain.StepResolveAncestor, logger, func(ctx context.Context) error {
			return w.resolveAncestor(ctx, run, logger)
		}); err != nil {
			return err
		}
	}

	if err := w.step(ctx, run, domain.StepInstall, logger, w.builder.InstallDependencies); err != nil {
		return err
	}

	if err := w.step(ctx, run, domain.StepBuild, logger, func(ctx context.Context) error {
		if err := os.MkdirAll(w.cfg.StatsDir, 0755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
		return w.builder.RunProductionBuild(ctx, statsPath)
	}); err != nil {
		return err
	}

	return w.recordChunks(ctx, run, statsPath, chartPath, logger)
}

func (w *QueueWorker) resolveAncestor(ctx context.Context, run *domain.PushRun, logger *slog.Logger) error {
	ancestor, err := w.revisions.ResolveAncestor(ctx, w.cfg.TrunkRef)
	if err != nil {
		return err
	}

	err = w.queue.SetAncestor(ctx, run.Push.SHA, ancestor)
	if errors.Is(err, domain.ErrAncestorConflict) {
		logger.Warn("Ancestor already recorded, keeping the stored value", "error", err)
		return nil
	}
	if err != nil {
		return err
	}

	run.Push.Ancestor = &ancestor
	logger.Info("Ancestor resolved", "ancestor", ancestor)
	return nil
}

// recordChunks drives the analyzer sequence, persisting each record as it is produced
func (w *QueueWorker) recordChunks(ctx context.Context, run *domain.PushRun, statsPath, chartPath string, logger *slog.Logger) error {
	start := time.Now()
	var totalGzip int64
	// Once rows start landing the push runs to completion despite shutdown
	persistCtx := context.WithoutCancel(ctx)

	for stat, err := range w.analyzer.Analyze(run.Push, statsPath, chartPath) {
		if err != nil {
			w.observer.StepFinished(domain.StepAnalyze, time.Since(start), err)
			return run.Fail(domain.StepAnalyze, err)
		}
		if err := w.queue.InsertChunkStat(persistCtx, stat); err != nil {
			w.observer.StepFinished(domain.StepAnalyze, time.Since(start), nil)
			w.observer.StepFinished(domain.StepPersist, time.Since(start), err)
			if cErr := run.Complete(domain.StepAnalyze); cErr != nil {
				return run.Fail(domain.StepAnalyze, cErr)
			}
			return run.Fail(domain.StepPersist, err)
		}

		run.StatsRecorded++
		totalGzip += stat.GzipSize
		w.observer.ChunkRecorded(stat)
		logger.Debug("Chunk recorded",
			"chunk", stat.Chunk,
			"hash", stat.Hash,
			"parsed", humanize.Bytes(uint64(stat.ParsedSize)),
			"gzip", humanize.Bytes(uint64(stat.GzipSize)))
	}

	elapsed := time.Since(start)
	w.observer.StepFinished(domain.StepAnalyze, elapsed, nil)
	w.observer.StepFinished(domain.StepPersist, elapsed, nil)
	for _, step := range []domain.Step{domain.StepAnalyze, domain.StepPersist} {
		if err := run.Complete(step); err != nil {
			return run.Fail(step, err)
		}
	}

	logger.Info("Chunk stats recorded", "chunks", run.StatsRecorded, "total_gzip", humanize.Bytes(uint64(totalGzip)))
	return nil
}

// step runs one pipeline step, timing it and advancing the run on success
func (w *QueueWorker) step(ctx context.Context, run *domain.PushRun, step domain.Step, logger *slog.Logger, fn func(context.Context) error) error {
	if err := run.Begin(step); err != nil {
		return run.Fail(step, err)
	}
	logger.Debug("Step started", "step", step)
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	w.observer.StepFinished(step, elapsed, err)

	if err != nil {
		return run.Fail(step, err)
	}
	if err := run.Complete(step); err != nil {
		return run.Fail(step, err)
	}
	logger.Info("Step finished", "step", step, "duration", elapsed.Round(time.Millisecond))
	return nil
}

// finishArtifacts archives and removes the artifacts of a push. It runs after
// success, failure and shutdown alike; its errors never change the outcome.
func (w *QueueWorker) finishArtifacts(ctx context.Context, sha, statsPath, chartPath string, logger *slog.Logger) {
	detached := context.WithoutCancel(ctx)

	if w.archiver != nil {
		if err := w.archiver.Archive(detached, sha, statsPath, chartPath); err != nil {
			logger.Warn("Failed to archive artifacts", "error", err)
		}
	}

	start := time.Now()
	err := w.builder.Cleanup(detached, statsPath, chartPath)
	w.observer.StepFinished(domain.StepCleanup, time.Since(start), err)
	if err != nil {
		logger.Warn("Cleanup failed", "error", err)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type nopObserver struct{}

func (nopObserver) ChunkRecorded(domain.ChunkStat) {}

func (nopObserver) PushCompleted(domain.Push, domain.Outcome) {}

func (nopObserver) QueuePolled(int) {}

func (nopObserver) StepFinished(domain.Step, time.Duration, error) {}
