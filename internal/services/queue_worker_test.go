package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/bundlestats/internal/domain"
	portsmocks "github.com/renato0307/bundlestats/internal/ports/mocks"
)

type workerMocks struct {
	analyzer  *portsmocks.MockBundleAnalyzer
	archiver  *portsmocks.MockArtifactArchiver
	builder   *portsmocks.MockBuildExecutor
	observer  *portsmocks.MockPipelineObserver
	queue     *portsmocks.MockPushQueue
	revisions *portsmocks.MockRevisionController
}

func newTestWorker(t *testing.T, statsDir string) (*QueueWorker, workerMocks) {
	t.Helper()
	m := workerMocks{
		analyzer:  portsmocks.NewMockBundleAnalyzer(t),
		archiver:  portsmocks.NewMockArtifactArchiver(t),
		builder:   portsmocks.NewMockBuildExecutor(t),
		observer:  portsmocks.NewMockPipelineObserver(t),
		queue:     portsmocks.NewMockPushQueue(t),
		revisions: portsmocks.NewMockRevisionController(t),
	}

	// Observer calls are incidental to most tests
	m.observer.EXPECT().StepFinished(mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.observer.EXPECT().ChunkRecorded(mock.Anything).Maybe()
	m.observer.EXPECT().QueuePolled(mock.Anything).Maybe()
	m.observer.EXPECT().PushCompleted(mock.Anything, mock.Anything).Maybe()
	m.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	w := NewQueueWorker(m.queue, m.revisions, m.builder, m.analyzer, m.archiver, m.observer, QueueWorkerConfig{
		StatsDir: statsDir,
	})
	return w, m
}

func seqOf(stats ...domain.ChunkStat) iter.Seq2[domain.ChunkStat, error] {
	return func(yield func(domain.ChunkStat, error) bool) {
		for _, s := range stats {
			if !yield(s, nil) {
				return
			}
		}
	}
}

func failingSeq(err error) iter.Seq2[domain.ChunkStat, error] {
	return func(yield func(domain.ChunkStat, error) bool) {
		yield(domain.ChunkStat{}, err)
	}
}

// statsFor mimics the analyzer: one record per asset, stamped with the push
func statsFor(push domain.Push) domain.ChunkStat {
	return domain.ChunkStat{
		Chunk:      "build",
		CreatedAt:  push.CreatedAt,
		GzipSize:   40,
		Hash:       "h1",
		ParsedSize: 80,
		SHA:        push.SHA,
		StatSize:   100,
	}
}

var (
	createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	pushP1    = domain.Push{SHA: "aaa", Branch: "feature-x", CreatedAt: createdAt}
	pushP2    = domain.Push{SHA: "bbb", Branch: "master", CreatedAt: createdAt.Add(time.Minute)}
)

func expectHappyBuild(m workerMocks) {
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(nil)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(push domain.Push, _, _ string) iter.Seq2[domain.ChunkStat, error] {
			return seqOf(statsFor(push))
		})
}

func TestRunOnce_FeatureAndTrunkPushes(t *testing.T) {
	statsDir := t.TempDir()
	w, m := newTestWorker(t, statsDir)
	expectHappyBuild(m)

	m.queue.EXPECT().ListPendingPushes(mock.Anything, 0).Return([]domain.Push{pushP1, pushP2}, nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "aaa").Return(nil).Once()
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil).Once()
	m.revisions.EXPECT().ResolveAncestor(mock.Anything, "origin/master").Return("000", nil).Once()
	m.queue.EXPECT().SetAncestor(mock.Anything, "aaa", "000").Return(nil).Once()

	var inserted []domain.ChunkStat
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).
		Run(func(_ context.Context, stat domain.ChunkStat) { inserted = append(inserted, stat) }).
		Return(nil)

	var processed []string
	m.queue.EXPECT().MarkProcessed(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sha string) { processed = append(processed, sha) }).
		Return(nil)

	handled, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, handled)
	assert.Equal(t, []string{"aaa", "bbb"}, processed, "pushes are processed in storage order")
	require.Len(t, inserted, 2)
	assert.Equal(t, domain.ChunkStat{
		Chunk: "build", Hash: "h1", StatSize: 100, ParsedSize: 80, GzipSize: 40, SHA: "aaa", CreatedAt: createdAt,
	}, inserted[0])
	assert.Equal(t, "bbb", inserted[1].SHA)
	m.builder.AssertCalled(t, "RunProductionBuild", mock.Anything, filepath.Join(statsDir, "aaa.stats.json"))
	m.queue.AssertNotCalled(t, "SetAncestor", mock.Anything, "bbb", mock.Anything)
	m.queue.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessPush_StateHistory(t *testing.T) {
	tests := []struct {
		name     string
		push     domain.Push
		expected []domain.Stage
	}{
		{
			name: "feature branch resolves ancestor",
			push: pushP1,
			expected: []domain.Stage{
				domain.StagePending, domain.StageFetching, domain.StageCheckedOut, domain.StageAncestorResolved,
				domain.StageDependenciesInstalled, domain.StageBuilt, domain.StageAnalyzed, domain.StagePersisted,
				domain.StageProcessed,
			},
		},
		{
			name: "trunk skips ancestor",
			push: pushP2,
			expected: []domain.Stage{
				domain.StagePending, domain.StageFetching, domain.StageCheckedOut,
				domain.StageDependenciesInstalled, domain.StageBuilt, domain.StageAnalyzed, domain.StagePersisted,
				domain.StageProcessed,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := newTestWorker(t, t.TempDir())
			expectHappyBuild(m)
			m.revisions.EXPECT().Checkout(mock.Anything, tt.push.SHA).Return(nil)
			m.revisions.EXPECT().ResolveAncestor(mock.Anything, mock.Anything).Return("000", nil).Maybe()
			m.queue.EXPECT().SetAncestor(mock.Anything, tt.push.SHA, "000").Return(nil).Maybe()
			m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil)
			m.queue.EXPECT().MarkProcessed(mock.Anything, tt.push.SHA).Return(nil)

			run, outcome := w.ProcessPush(context.Background(), tt.push)

			assert.Equal(t, domain.OutcomeSucceeded, outcome)
			assert.Equal(t, tt.expected, run.History)
			assert.Equal(t, 1, run.StatsRecorded)
		})
	}
}

func TestProcessPush_ExistingAncestorNotResolvedAgain(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	expectHappyBuild(m)
	ancestor := "000"
	push := domain.Push{SHA: "ccc", Branch: "feature-y", Ancestor: &ancestor}
	m.revisions.EXPECT().Checkout(mock.Anything, "ccc").Return(nil)
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "ccc").Return(nil)

	_, outcome := w.ProcessPush(context.Background(), push)

	assert.Equal(t, domain.OutcomeSucceeded, outcome)
	m.revisions.AssertNotCalled(t, "ResolveAncestor", mock.Anything, mock.Anything)
}

func TestProcessPush_BuildFailure(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	buildErr := &domain.CommandError{Command: "npm run -s env", ExitCode: 2, Output: "Module not found"}

	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(buildErr)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil).Once()

	var failure domain.PushFailure
	m.queue.EXPECT().MarkFailed(mock.Anything, "bbb", mock.Anything).
		Run(func(_ context.Context, _ string, f domain.PushFailure) { failure = f }).
		Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	run, outcome := w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.Equal(t, domain.StepBuild, failure.Step)
	assert.Equal(t, domain.StageDependenciesInstalled, failure.Stage)
	assert.Contains(t, failure.Reason, "exited with code 2")
	assert.Equal(t, domain.StageProcessed, run.Stage)
	assert.Zero(t, run.StatsRecorded)
	m.analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)
	m.queue.AssertNotCalled(t, "InsertChunkStat", mock.Anything, mock.Anything)
}

func TestProcessPush_MalformedArtifact(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(nil)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		Return(failingSeq(fmt.Errorf("stats.json: %w", domain.ErrMalformedArtifact)))
	m.queue.EXPECT().MarkFailed(mock.Anything, "bbb", mock.MatchedBy(func(f domain.PushFailure) bool {
		return f.Step == domain.StepAnalyze && f.Stage == domain.StageBuilt
	})).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	_, outcome := w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, domain.OutcomeFailed, outcome)
}

func TestProcessPush_PersistFailureKeepsEarlierRows(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(nil)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(seqOf(
		domain.ChunkStat{SHA: "bbb", Chunk: "a"},
		domain.ChunkStat{SHA: "bbb", Chunk: "b"},
		domain.ChunkStat{SHA: "bbb", Chunk: "c"},
	))
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil).Once()
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
	m.queue.EXPECT().MarkFailed(mock.Anything, "bbb", mock.MatchedBy(func(f domain.PushFailure) bool {
		return f.Step == domain.StepPersist && f.Stage == domain.StageAnalyzed
	})).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	run, outcome := w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.Equal(t, 1, run.StatsRecorded)
	m.queue.AssertNumberOfCalls(t, "InsertChunkStat", 2)
}

func TestProcessPush_FetchFailureIsReportedWhileFetching(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(errors.New("remote hung up"))
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.queue.EXPECT().MarkFailed(mock.Anything, "bbb", mock.MatchedBy(func(f domain.PushFailure) bool {
		return f.Step == domain.StepFetch && f.Stage == domain.StageFetching
	})).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	run, outcome := w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.Equal(t, []domain.Stage{domain.StagePending, domain.StageFetching, domain.StageProcessed}, run.History)
}

func TestProcessPush_ShutdownDuringPersistenceFinishesPush(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(nil)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		Return(func(yield func(domain.ChunkStat, error) bool) {
			if !yield(domain.ChunkStat{SHA: "bbb", Chunk: "a"}, nil) {
				return
			}
			cancel()
			yield(domain.ChunkStat{SHA: "bbb", Chunk: "b"}, nil)
		})
	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	m.queue.EXPECT().InsertChunkStat(live, mock.Anything).Return(nil).Twice()
	m.queue.EXPECT().MarkProcessed(live, "bbb").Return(nil)

	run, outcome := w.ProcessPush(ctx, pushP2)

	assert.Equal(t, domain.OutcomeSucceeded, outcome)
	assert.Equal(t, 2, run.StatsRecorded)
	assert.Equal(t, domain.StageProcessed, run.Stage)
	m.queue.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessPush_PersistFailureAfterShutdownIsRecorded(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(nil)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(seqOf(
		domain.ChunkStat{SHA: "bbb", Chunk: "a"},
		domain.ChunkStat{SHA: "bbb", Chunk: "b"},
	))
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil).Once()
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.ChunkStat) error {
			cancel()
			return errors.New("connection reset")
		}).Once()
	m.queue.EXPECT().MarkFailed(mock.Anything, "bbb", mock.MatchedBy(func(f domain.PushFailure) bool {
		return f.Step == domain.StepPersist
	})).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	run, outcome := w.ProcessPush(ctx, pushP2)

	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.Equal(t, 1, run.StatsRecorded)
}

func TestProcessPush_AnalyzerErrorBeforeRowsStoresNothing(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(nil)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		Return(failingSeq(errors.New("chart: permission denied")))
	m.queue.EXPECT().MarkFailed(mock.Anything, "bbb", mock.MatchedBy(func(f domain.PushFailure) bool {
		return f.Step == domain.StepAnalyze
	})).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	run, outcome := w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.Zero(t, run.StatsRecorded)
	m.queue.AssertNotCalled(t, "InsertChunkStat", mock.Anything, mock.Anything)
}

func TestProcessPush_CleanupFailureDoesNotChangeOutcome(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil)
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).Return(nil)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(errors.New("npm run clean exited with code 1"))
	m.analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(seqOf(statsFor(pushP2)))
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	_, outcome := w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, domain.OutcomeSucceeded, outcome)
	m.queue.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessPush_CleanupRunsAfterFailedBuild(t *testing.T) {
	statsDir := t.TempDir()
	w, m := newTestWorker(t, statsDir)
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(errors.New("npm install exited with code 1"))
	m.builder.EXPECT().Cleanup(mock.Anything,
		[]string{filepath.Join(statsDir, "bbb.stats.json"), filepath.Join(statsDir, "bbb.chart.json")}).
		Return(errors.New("clean failed"))
	m.queue.EXPECT().MarkFailed(mock.Anything, "bbb", mock.MatchedBy(func(f domain.PushFailure) bool {
		return f.Step == domain.StepInstall
	})).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	_, outcome := w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, domain.OutcomeFailed, outcome)
}

func TestProcessPush_AncestorConflictContinues(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	expectHappyBuild(m)
	m.revisions.EXPECT().Checkout(mock.Anything, "aaa").Return(nil)
	m.revisions.EXPECT().ResolveAncestor(mock.Anything, "origin/master").Return("111", nil)
	m.queue.EXPECT().SetAncestor(mock.Anything, "aaa", "111").
		Return(fmt.Errorf("push aaa has ancestor 000: %w", domain.ErrAncestorConflict))
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "aaa").Return(nil)

	_, outcome := w.ProcessPush(context.Background(), pushP1)

	assert.Equal(t, domain.OutcomeSucceeded, outcome)
}

func TestProcessPush_MergeBaseFailure(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil)
	m.revisions.EXPECT().Checkout(mock.Anything, "aaa").Return(nil)
	m.revisions.EXPECT().ResolveAncestor(mock.Anything, "origin/master").Return("", domain.ErrEmptyMergeBase)
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).Return(nil)
	m.queue.EXPECT().MarkFailed(mock.Anything, "aaa", mock.MatchedBy(func(f domain.PushFailure) bool {
		return f.Step == domain.StepResolveAncestor && f.Stage == domain.StageCheckedOut
	})).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "aaa").Return(nil)

	_, outcome := w.ProcessPush(context.Background(), pushP1)

	assert.Equal(t, domain.OutcomeFailed, outcome)
	m.builder.AssertNotCalled(t, "InstallDependencies", mock.Anything)
}

func TestRunOnce_ShutdownLeavesPushPending(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.queue.EXPECT().ListPendingPushes(mock.Anything, 0).Return([]domain.Push{pushP2, pushP1}, nil)
	m.revisions.EXPECT().FetchLatest(mock.Anything).Return(nil).Once()
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil).Once()
	m.builder.EXPECT().InstallDependencies(mock.Anything).Return(nil).Once()
	m.builder.EXPECT().RunProductionBuild(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string) error {
			cancel()
			return fmt.Errorf("build interrupted: %w", ctx.Err())
		}).Once()

	var cleanupCtxErr error
	m.builder.EXPECT().Cleanup(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ ...string) error {
			cleanupCtxErr = ctx.Err()
			return nil
		}).Once()

	handled, err := w.RunOnce(ctx)

	require.NoError(t, err)
	assert.Zero(t, handled)
	assert.NoError(t, cleanupCtxErr, "cleanup runs detached from shutdown")
	m.queue.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	m.queue.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything, mock.Anything)
	m.revisions.AssertNotCalled(t, "Checkout", mock.Anything, "aaa")
}

func TestRun_EmptyQueueWaitsThenPolls(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.queue.EXPECT().ListPendingPushes(mock.Anything, 0).Return(nil, nil).Times(2)

	var waits []time.Duration
	w.wait = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		if len(waits) == 2 {
			cancel()
			return ctx.Err()
		}
		return nil
	}

	err := w.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{DefaultPollInterval, DefaultPollInterval}, waits)
	m.revisions.AssertNotCalled(t, "FetchLatest", mock.Anything)
}

func TestRun_ListingErrorTreatedAsEmptyBatch(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.queue.EXPECT().ListPendingPushes(mock.Anything, 0).Return(nil, errors.New("database is locked")).Once()

	waited := false
	w.wait = func(ctx context.Context, d time.Duration) error {
		waited = true
		cancel()
		return ctx.Err()
	}

	require.NoError(t, w.Run(ctx))
	assert.True(t, waited)
}

func TestRun_PollsAgainImmediatelyAfterBatch(t *testing.T) {
	w, m := newTestWorker(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	expectHappyBuild(m)

	m.queue.EXPECT().ListPendingPushes(mock.Anything, 0).Return([]domain.Push{pushP2}, nil).Once()
	m.queue.EXPECT().ListPendingPushes(mock.Anything, 0).Return(nil, nil).Once()
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	waits := 0
	w.wait = func(ctx context.Context, d time.Duration) error {
		waits++
		cancel()
		return ctx.Err()
	}

	require.NoError(t, w.Run(ctx))
	assert.Equal(t, 1, waits, "no wait between a non-empty batch and the next poll")
}

func TestRun_StopsWhenContextAlreadyCancelled(t *testing.T) {
	w, _ := newTestWorker(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, w.Run(ctx))
}

func TestProcessPush_ReportsOutcomeToObserver(t *testing.T) {
	m := workerMocks{
		analyzer:  portsmocks.NewMockBundleAnalyzer(t),
		builder:   portsmocks.NewMockBuildExecutor(t),
		observer:  portsmocks.NewMockPipelineObserver(t),
		queue:     portsmocks.NewMockPushQueue(t),
		revisions: portsmocks.NewMockRevisionController(t),
	}
	w := NewQueueWorker(m.queue, m.revisions, m.builder, m.analyzer, nil, m.observer, QueueWorkerConfig{StatsDir: t.TempDir()})
	expectHappyBuild(m)
	m.revisions.EXPECT().Checkout(mock.Anything, "bbb").Return(nil)
	m.queue.EXPECT().InsertChunkStat(mock.Anything, mock.Anything).Return(nil)
	m.queue.EXPECT().MarkProcessed(mock.Anything, "bbb").Return(nil)

	var steps []domain.Step
	m.observer.EXPECT().StepFinished(mock.Anything, mock.Anything, mock.Anything).
		Run(func(step domain.Step, _ time.Duration, err error) {
			assert.NoError(t, err)
			steps = append(steps, step)
		})
	m.observer.EXPECT().ChunkRecorded(statsFor(pushP2)).Once()
	m.observer.EXPECT().PushCompleted(pushP2, domain.OutcomeSucceeded).Once()

	w.ProcessPush(context.Background(), pushP2)

	assert.Equal(t, []domain.Step{
		domain.StepFetch, domain.StepCheckout, domain.StepInstall, domain.StepBuild,
		domain.StepAnalyze, domain.StepPersist, domain.StepCleanup,
	}, steps)
}
