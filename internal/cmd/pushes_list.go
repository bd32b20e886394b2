package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/bundlestats/internal/domain"
)

// PushesListCmd lists pushes, most recent first
type PushesListCmd struct {
	Branch  string `help:"Only show pushes to this branch"`
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit   int    `help:"Maximum number of pushes to show (0 = all)" default:"50"`
	Pending bool   `help:"Only show pushes that have not been processed"`
}

// Run executes the list command
func (p *PushesListCmd) Run(cli *CLI) error {
	pushes, err := cli.Container.Repository.ListPushes(context.Background(), domain.PushFilter{
		Branch:      p.Branch,
		Limit:       p.Limit,
		PendingOnly: p.Pending,
	})
	if err != nil {
		return fmt.Errorf("failed to list pushes: %w", err)
	}

	if p.Format == "json" {
		return printPushesJSON(os.Stdout, pushes)
	}
	printPushesTable(os.Stdout, pushes)
	return nil
}

func printPushesJSON(w io.Writer, pushes []domain.Push) error {
	out := make([]pushJSON, len(pushes))
	for i, push := range pushes {
		out[i] = toPushJSON(push)
	}
	return writeJSON(w, out)
}

func printPushesTable(w io.Writer, pushes []domain.Push) {
	if len(pushes) == 0 {
		fmt.Fprintln(w, "No pushes found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SHA\tBRANCH\tSTATUS\tANCESTOR\tCREATED")
	for _, push := range pushes {
		ancestor := shortSHA(push.AncestorOrEmpty())
		if ancestor == "" {
			ancestor = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shortSHA(push.SHA),
			push.Branch,
			renderStatus(push),
			ancestor,
			push.CreatedAt.Local().Format(timeLayout),
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotal: %d pushes\n", len(pushes))
}
