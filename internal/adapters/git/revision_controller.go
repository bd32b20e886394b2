package git

import (
	"context"
	"fmt"

	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
)

// CLIRevisionController implements ports.RevisionController using the git CLI
type CLIRevisionController struct {
	repoDir string
	runner  ports.CommandRunner
}

// Verify interface compliance at compile time
var _ ports.RevisionController = (*CLIRevisionController)(nil)

// NewCLIRevisionController creates a controller operating on the clone at repoDir
func NewCLIRevisionController(runner ports.CommandRunner, repoDir string) *CLIRevisionController {
	return &CLIRevisionController{
		repoDir: repoDir,
		runner:  runner,
	}
}

// FetchLatest updates all remote-tracking refs, pruning deleted branches
func (c *CLIRevisionController) FetchLatest(ctx context.Context) error {
	_, err := c.git(ctx, false, "fetch", "--all", "--prune")
	return err
}

// Checkout moves the working tree to sha, discarding local modifications
func (c *CLIRevisionController) Checkout(ctx context.Context, sha string) error {
	if err := domain.ValidateRevision(sha); err != nil {
		return err
	}
	_, err := c.git(ctx, false, "checkout", "--force", "--quiet", sha)
	return err
}

// ResolveAncestor returns the merge base between the checked-out revision and trunkRef
func (c *CLIRevisionController) ResolveAncestor(ctx context.Context, trunkRef string) (string, error) {
	out, err := c.git(ctx, true, "merge-base", "HEAD", trunkRef)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("merge-base HEAD %s: %w", trunkRef, domain.ErrEmptyMergeBase)
	}

	logging.Logger.Debug("Resolved merge base", "trunk_ref", trunkRef, "ancestor", out)
	return out, nil
}

func (c *CLIRevisionController) git(ctx context.Context, capture bool, args ...string) (string, error) {
	result, err := c.runner.Run(ctx, ports.Command{
		Args:          args,
		CaptureStdout: capture,
		Dir:           c.repoDir,
		Name:          "git",
	})
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}
