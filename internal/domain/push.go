package domain

import (
	"regexp"
	"strings"
	"time"
)

// DefaultTrunkBranch is the branch whose pushes are never compared against an ancestor
const DefaultTrunkBranch = "master"

// revisionPattern matches abbreviated or full object names (SHA-1 and SHA-256)
var revisionPattern = regexp.MustCompile(`^[0-9a-fA-F]{4,64}$`)

// Push represents a source-control revision queued for a bundle-size build
type Push struct {
	Ancestor      *string    // Merge-base against trunk, set at most once
	Branch        string     // Source branch name
	CreatedAt     time.Time  // When the push was queued
	Failed        bool       // Pipeline failed; push will not be retried
	FailureReason string     // Diagnostic text of the failure (if any)
	FailureStage  Stage      // Last stage reached before the failure
	FailureStep   Step       // Step that failed
	Processed     bool       // Pipeline attempted; never reverted
	ProcessedAt   *time.Time // When the push reached the processed state
	SHA           string     // Revision identifier (primary key)
}

// NeedsAncestor reports whether the merge-base must be resolved for this push
func (p Push) NeedsAncestor(trunkBranch string) bool {
	if p.Branch == trunkBranch {
		return false
	}
	return p.Ancestor == nil || *p.Ancestor == ""
}

// AncestorOrEmpty returns the ancestor revision or an empty string
func (p Push) AncestorOrEmpty() string {
	if p.Ancestor == nil {
		return ""
	}
	return *p.Ancestor
}

// ChunkStat is one size measurement of one output chunk for one push
type ChunkStat struct {
	Chunk      string
	CreatedAt  time.Time
	GzipSize   int64
	Hash       string
	ParsedSize int64
	SHA        string
	StatSize   int64
}

// PushFailure describes why a push did not complete its pipeline
type PushFailure struct {
	Reason string
	Stage  Stage
	Step   Step
}

// PushFilter selects pushes for listing
type PushFilter struct {
	Branch      string
	Limit       int
	PendingOnly bool
}

// ValidateRevision rejects anything that is not a plain hexadecimal object name.
// Revisions are passed to git as positional arguments, so a leading dash must never get through.
func ValidateRevision(sha string) error {
	if !revisionPattern.MatchString(sha) {
		return ErrInvalidRevision
	}
	return nil
}

// ParseAssetLabel splits an asset label of the form <chunk>.<hash>.<ext...>
// on its first two dot-separated segments.
// A label without a dot yields an empty hash.
func ParseAssetLabel(label string) (chunk, hash string) {
	parts := strings.SplitN(label, ".", 3)
	chunk = parts[0]
	if len(parts) > 1 {
		hash = parts[1]
	}
	return chunk, hash
}
