package ports

import "context"

// RevisionController drives the tracked repository's working copy
type RevisionController interface {
	// Checkout sets the working copy to the exact commit
	Checkout(ctx context.Context, sha string) error

	// FetchLatest updates all remote-tracking references
	FetchLatest(ctx context.Context) error

	// ResolveAncestor computes the merge-base between HEAD and trunkRef
	ResolveAncestor(ctx context.Context, trunkRef string) (string, error)
}
