package ports

import (
	"time"

	"github.com/renato0307/bundlestats/internal/domain"
)

// PipelineObserver receives pipeline events for metrics
type PipelineObserver interface {
	ChunkRecorded(stat domain.ChunkStat)
	PushCompleted(push domain.Push, outcome domain.Outcome)
	QueuePolled(pending int)
	StepFinished(step domain.Step, elapsed time.Duration, err error)
}
