package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/bundlestats/internal/domain"
)

// PushesAddCmd queues a push
type PushesAddCmd struct {
	Branch string `help:"Branch the revision was pushed to" required:""`
	SHA    string `arg:"" help:"Revision to build"`
}

// Run executes the add command
func (p *PushesAddCmd) Run(cli *CLI) error {
	push := domain.Push{
		Branch:    p.Branch,
		CreatedAt: time.Now().UTC(),
		SHA:       p.SHA,
	}
	if err := cli.Container.Repository.AddPush(context.Background(), push); err != nil {
		return fmt.Errorf("failed to add push: %w", err)
	}

	fmt.Printf("Queued %s on %s\n", push.SHA, push.Branch)
	return nil
}
