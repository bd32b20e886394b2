package webpack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/klauspost/compress/gzip"

	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
)

// Analyzer implements ports.BundleAnalyzer for webpack stats documents
type Analyzer struct {
	bundleDir string
}

// Verify interface compliance at compile time
var _ ports.BundleAnalyzer = (*Analyzer)(nil)

// NewAnalyzer creates an Analyzer resolving emitted files under bundleDir
func NewAnalyzer(bundleDir string) *Analyzer {
	return &Analyzer{bundleDir: bundleDir}
}

// Analyze returns the chunk records of the artifact at statsPath
func (a *Analyzer) Analyze(push domain.Push, statsPath, chartPath string) iter.Seq2[domain.ChunkStat, error] {
	var consumed atomic.Bool

	return func(yield func(domain.ChunkStat, error) bool) {
		if consumed.Swap(true) {
			yield(domain.ChunkStat{}, domain.ErrSequenceConsumed)
			return
		}

		entries, err := a.chartEntries(statsPath)
		if err != nil {
			yield(domain.ChunkStat{}, err)
			return
		}
		logging.Logger.Debug("Analyzed stats artifact", "path", statsPath, "chunks", len(entries))

		// The chart is written before the first record is yielded
		if chartPath != "" {
			if err := writeChart(chartPath, entries); err != nil {
				yield(domain.ChunkStat{}, err)
				return
			}
		}

		for _, e := range entries {
			chunk, hash := domain.ParseAssetLabel(e.Label)
			stat := domain.ChunkStat{
				Chunk:      chunk,
				CreatedAt:  push.CreatedAt,
				GzipSize:   e.GzipSize,
				Hash:       hash,
				ParsedSize: e.ParsedSize,
				SHA:        push.SHA,
				StatSize:   e.StatSize,
			}
			if !yield(stat, nil) {
				return
			}
		}
	}
}

// chartEntries reads the artifact and derives one chart entry per script asset
func (a *Analyzer) chartEntries(statsPath string) ([]chartEntry, error) {
	data, err := os.ReadFile(statsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats artifact: %w", err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	if doc.raw == nil {
		for i, e := range doc.chart {
			if e.Label == "" {
				return nil, fmt.Errorf("chart entry %d has no label: %w", i, domain.ErrMalformedArtifact)
			}
		}
		if err := checkSizes(doc.chart); err != nil {
			return nil, err
		}
		return doc.chart, nil
	}

	spans := doc.raw.moduleSpans()
	entries := make([]chartEntry, 0, len(doc.raw.Assets))
	for _, asset := range doc.raw.Assets {
		if !isScriptAsset(asset.Name) || len(asset.Chunks) == 0 {
			continue
		}
		label, _, _ := strings.Cut(asset.Name, "?")

		entry := chartEntry{
			Label:      label,
			ParsedSize: asset.Size,
			StatSize:   statSize(spans, asset.Chunks),
		}
		if err := a.measureEmitted(label, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, checkSizes(entries)
}

// checkSizes rejects entries with negative sizes
func checkSizes(entries []chartEntry) error {
	for _, e := range entries {
		if e.StatSize < 0 || e.ParsedSize < 0 || e.GzipSize < 0 {
			return fmt.Errorf("asset %s has a negative size: %w", e.Label, domain.ErrMalformedArtifact)
		}
	}
	return nil
}

// measureEmitted fills parsed and gzip sizes from the emitted bundle file, when present
func (a *Analyzer) measureEmitted(label string, entry *chartEntry) error {
	if a.bundleDir == "" {
		return nil
	}

	content, err := os.ReadFile(filepath.Join(a.bundleDir, filepath.FromSlash(label)))
	if errors.Is(err, os.ErrNotExist) {
		logging.Logger.Debug("Emitted bundle not found, using reported size", "asset", label)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read emitted bundle %s: %w", label, err)
	}

	gz, err := gzipSize(content)
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", label, err)
	}
	entry.ParsedSize = int64(len(content))
	entry.GzipSize = gz
	return nil
}

func gzipSize(content []byte) (int64, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(content); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return int64(buf.Len()), nil
}

func writeChart(path string, entries []chartEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode chart artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write chart artifact: %w", err)
	}
	return nil
}
