package ports

import (
	"iter"

	"github.com/renato0307/bundlestats/internal/domain"
)

// BundleAnalyzer turns a stats artifact into chunk size records
type BundleAnalyzer interface {
	// Analyze returns a lazy, single-use sequence of records for the push.
	// When chartPath is set, the derived chart artifact is written before the first record.
	Analyze(push domain.Push, statsPath, chartPath string) iter.Seq2[domain.ChunkStat, error]
}
