package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/bundlestats/internal/domain"
)

// PushesViewCmd views a push and the chunk sizes recorded for it
type PushesViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	SHA    string `arg:"" help:"Revision of the push to view"`
}

// Run executes the view command
func (p *PushesViewCmd) Run(cli *CLI) error {
	ctx := context.Background()

	push, err := cli.Container.Repository.GetPush(ctx, p.SHA)
	if err != nil {
		return fmt.Errorf("failed to get push: %w", err)
	}
	stats, err := cli.Container.Repository.ListChunkStats(ctx, push.SHA)
	if err != nil {
		return fmt.Errorf("failed to list chunk stats: %w", err)
	}

	if p.Format == "json" {
		return printPushJSON(os.Stdout, *push, stats)
	}
	printPushDetails(os.Stdout, *push, stats)
	return nil
}

func printPushJSON(w io.Writer, push domain.Push, stats []domain.ChunkStat) error {
	out := toPushJSON(push)
	out.Chunks = toChunkStatJSON(stats)
	return writeJSON(w, out)
}

func printPushDetails(w io.Writer, push domain.Push, stats []domain.ChunkStat) {
	fmt.Fprintf(w, "SHA: %s\n", push.SHA)
	fmt.Fprintf(w, "Branch: %s\n", push.Branch)
	fmt.Fprintf(w, "Status: %s\n", renderStatus(push))
	if ancestor := push.AncestorOrEmpty(); ancestor != "" {
		fmt.Fprintf(w, "Ancestor: %s\n", ancestor)
	} else {
		fmt.Fprintf(w, "Ancestor: <none>\n")
	}
	fmt.Fprintf(w, "Created: %s\n", push.CreatedAt.Local().Format(timeLayout))
	if push.ProcessedAt != nil {
		fmt.Fprintf(w, "Processed: %s\n", push.ProcessedAt.Local().Format(timeLayout))
	}
	if push.Failed {
		fmt.Fprintf(w, "Failed Step: %s\n", push.FailureStep)
		fmt.Fprintf(w, "Failed After: %s\n", push.FailureStage)
		fmt.Fprintf(w, "Reason: %s\n", push.FailureReason)
	}

	if len(stats) == 0 {
		fmt.Fprintln(w, "\nNo chunk stats recorded")
		return
	}

	fmt.Fprintln(w)
	printChunkTable(w, stats)
}

// printChunkTable prints one row per chunk plus a total
func printChunkTable(w io.Writer, stats []domain.ChunkStat) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHUNK\tHASH\tSTAT\tPARSED\tGZIP")

	var statTotal, parsedTotal, gzipTotal int64
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			s.Chunk,
			s.Hash,
			formatSize(s.StatSize),
			formatSize(s.ParsedSize),
			formatSize(s.GzipSize),
		)
		statTotal += s.StatSize
		parsedTotal += s.ParsedSize
		gzipTotal += s.GzipSize
	}
	fmt.Fprintf(tw, "TOTAL\t\t%s\t%s\t%s\n", formatSize(statTotal), formatSize(parsedTotal), formatSize(gzipTotal))
	tw.Flush()

	fmt.Fprintf(w, "\nTotal: %d chunks\n", len(stats))
}

func formatSize(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}
