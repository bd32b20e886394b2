package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/renato0307/bundlestats/internal/adapters/webpack"
	"github.com/renato0307/bundlestats/internal/config"
	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/ports"
)

// AnalyzeCmd runs the bundle analyzer on a local artifact
type AnalyzeCmd struct {
	Artifact  string `arg:"" help:"Stats or chart artifact to analyze" type:"existingfile"`
	BundleDir string `help:"Directory holding emitted bundles (overrides --bundle-dir)"`
	Chart     string `help:"Also write the derived chart artifact to this path"`
	Format    string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the analyze command. Nothing is stored.
func (a *AnalyzeCmd) Run(cli *CLI) error {
	var analyzer ports.BundleAnalyzer = cli.Container.Analyzer
	if a.BundleDir != "" {
		analyzer = webpack.NewAnalyzer(config.ExpandPath(a.BundleDir))
	}

	stats, err := collectChunkStats(analyzer, a.Artifact, a.Chart)
	if err != nil {
		return err
	}

	if a.Format == "json" {
		return printChunkStatsJSON(os.Stdout, stats)
	}
	if len(stats) == 0 {
		fmt.Println("No script chunks found")
		return nil
	}
	printChunkTable(os.Stdout, stats)
	return nil
}

// collectChunkStats drains the analyzer sequence for a local artifact
func collectChunkStats(analyzer ports.BundleAnalyzer, artifact, chartPath string) ([]domain.ChunkStat, error) {
	var stats []domain.ChunkStat
	for stat, err := range analyzer.Analyze(domain.Push{}, artifact, chartPath) {
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %s: %w", artifact, err)
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

func printChunkStatsJSON(w io.Writer, stats []domain.ChunkStat) error {
	return writeJSON(w, toChunkStatJSON(stats))
}
