package ports

import (
	"context"

	"github.com/renato0307/bundlestats/internal/domain"
)

// PushQueue is the storage contract consumed by the queue worker
type PushQueue interface {
	InsertChunkStat(ctx context.Context, stat domain.ChunkStat) error
	ListPendingPushes(ctx context.Context, limit int) ([]domain.Push, error)
	MarkFailed(ctx context.Context, sha string, failure domain.PushFailure) error
	MarkProcessed(ctx context.Context, sha string) error
	SetAncestor(ctx context.Context, sha, ancestor string) error
}

// PushReader reads pushes and their recorded stats
type PushReader interface {
	GetPush(ctx context.Context, sha string) (*domain.Push, error)
	ListChunkStats(ctx context.Context, sha string) ([]domain.ChunkStat, error)
	ListPushes(ctx context.Context, filter domain.PushFilter) ([]domain.Push, error)
}

// PushWriter creates pushes
type PushWriter interface {
	AddPush(ctx context.Context, push domain.Push) error
}

// PushRepository is the composite interface
type PushRepository interface {
	PushQueue
	PushReader
	PushWriter
	Close() error
}
