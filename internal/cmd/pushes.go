package cmd

import (
	"time"

	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/theme"
)

// PushesCmd manages queued pushes
type PushesCmd struct {
	Add  PushesAddCmd  `cmd:"add" help:"Queue a push for a bundle-size build"`
	List PushesListCmd `cmd:"list" help:"List pushes" default:"1"`
	View PushesViewCmd `cmd:"view" help:"View a push and its chunk stats"`
}

const timeLayout = "2006-01-02 15:04:05"

// pushStatus is the user-facing state of a push
func pushStatus(p domain.Push) string {
	switch {
	case p.Failed:
		return "failed"
	case p.Processed:
		return "processed"
	default:
		return "pending"
	}
}

func renderStatus(p domain.Push) string {
	status := pushStatus(p)
	return theme.StatusStyle(status).Render(status)
}

// pushJSON is the JSON shape of a push in command output
type pushJSON struct {
	Ancestor      string          `json:"ancestor,omitempty"`
	Branch        string          `json:"branch"`
	Chunks        []chunkStatJSON `json:"chunks,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	FailureReason string          `json:"failure_reason,omitempty"`
	FailureStage  domain.Stage    `json:"failure_stage,omitempty"`
	FailureStep   domain.Step     `json:"failure_step,omitempty"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	SHA           string          `json:"sha"`
	Status        string          `json:"status"`
}

// chunkStatJSON is the JSON shape of a chunk stat in command output
type chunkStatJSON struct {
	Chunk      string `json:"chunk"`
	GzipSize   int64  `json:"gzip_size"`
	Hash       string `json:"hash"`
	ParsedSize int64  `json:"parsed_size"`
	StatSize   int64  `json:"stat_size"`
}

func toPushJSON(p domain.Push) pushJSON {
	return pushJSON{
		Ancestor:      p.AncestorOrEmpty(),
		Branch:        p.Branch,
		CreatedAt:     p.CreatedAt,
		FailureReason: p.FailureReason,
		FailureStage:  p.FailureStage,
		FailureStep:   p.FailureStep,
		ProcessedAt:   p.ProcessedAt,
		SHA:           p.SHA,
		Status:        pushStatus(p),
	}
}

func toChunkStatJSON(stats []domain.ChunkStat) []chunkStatJSON {
	out := make([]chunkStatJSON, len(stats))
	for i, s := range stats {
		out[i] = chunkStatJSON{
			Chunk:      s.Chunk,
			GzipSize:   s.GzipSize,
			Hash:       s.Hash,
			ParsedSize: s.ParsedSize,
			StatSize:   s.StatSize,
		}
	}
	return out
}

// shortSHA truncates a revision for table output
func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
