package ports

import "context"

// ArtifactArchiver keeps a copy of build artifacts before cleanup removes them
type ArtifactArchiver interface {
	Archive(ctx context.Context, sha string, paths ...string) error
	Close() error
}
