package webpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/renato0307/bundlestats/internal/domain"
)

// chartEntry is one element of the chart document
type chartEntry struct {
	GzipSize   int64  `json:"gzipSize"`
	Label      string `json:"label"`
	ParsedSize int64  `json:"parsedSize"`
	StatSize   int64  `json:"statSize"`
}

// rawStats is the subset of the webpack stats document used for sizing
type rawStats struct {
	Assets   []rawAsset  `json:"assets"`
	Children []rawStats  `json:"children"`
	Chunks   []rawChunk  `json:"chunks"`
	Modules  []rawModule `json:"modules"`
}

type rawAsset struct {
	Chunks []chunkID `json:"chunks"`
	Name   string    `json:"name"`
	Size   int64     `json:"size"`
}

type rawChunk struct {
	ID      chunkID     `json:"id"`
	Modules []rawModule `json:"modules"`
}

type rawModule struct {
	Chunks []chunkID `json:"chunks"`
	Size   int64     `json:"size"`
}

// chunkID accepts both numeric and named chunk ids
type chunkID string

func (c *chunkID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = chunkID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("chunk id %s: %w", data, err)
	}
	*c = chunkID(n.String())
	return nil
}

// document is a decoded stats artifact in one of its two accepted shapes
type document struct {
	chart []chartEntry
	raw   *rawStats
}

func decodeDocument(data []byte) (document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return document{}, fmt.Errorf("empty artifact: %w", domain.ErrMalformedArtifact)
	}

	switch trimmed[0] {
	case '[':
		var chart []chartEntry
		if err := json.Unmarshal(trimmed, &chart); err != nil {
			return document{}, fmt.Errorf("%w: %v", domain.ErrMalformedArtifact, err)
		}
		return document{chart: chart}, nil
	case '{':
		var raw rawStats
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return document{}, fmt.Errorf("%w: %v", domain.ErrMalformedArtifact, err)
		}
		return document{raw: effectiveStats(&raw)}, nil
	default:
		return document{}, fmt.Errorf("unexpected leading %q: %w", trimmed[0], domain.ErrMalformedArtifact)
	}
}

// effectiveStats picks the compilation that carries the assets.
// Multi-compiler builds put everything under children.
func effectiveStats(raw *rawStats) *rawStats {
	if len(raw.Assets) == 0 && len(raw.Children) > 0 {
		return &raw.Children[0]
	}
	return raw
}

// moduleSpan is one module's size and the chunks it belongs to
type moduleSpan struct {
	chunks []chunkID
	size   int64
}

func (s *rawStats) moduleSpans() []moduleSpan {
	if len(s.Modules) > 0 {
		spans := make([]moduleSpan, 0, len(s.Modules))
		for _, m := range s.Modules {
			spans = append(spans, moduleSpan{chunks: m.Chunks, size: m.Size})
		}
		return spans
	}

	var spans []moduleSpan
	for _, c := range s.Chunks {
		for _, m := range c.Modules {
			spans = append(spans, moduleSpan{chunks: []chunkID{c.ID}, size: m.Size})
		}
	}
	return spans
}

// isScriptAsset reports whether the asset name denotes a JavaScript bundle
func isScriptAsset(name string) bool {
	name, _, _ = strings.Cut(name, "?")
	for _, ext := range []string{".js", ".mjs", ".cjs"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// statSize sums the modules belonging to any of the asset's chunks, counting each module once
func statSize(spans []moduleSpan, chunks []chunkID) int64 {
	member := make(map[chunkID]struct{}, len(chunks))
	for _, c := range chunks {
		member[c] = struct{}{}
	}

	var total int64
	for _, span := range spans {
		for _, c := range span.chunks {
			if _, ok := member[c]; ok {
				total += span.size
				break
			}
		}
	}
	return total
}
