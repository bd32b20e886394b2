package storage

import (
	"github.com/renato0307/bundlestats/internal/domain"
)

// pushModelToDomain converts a PushModel (GORM) to domain.Push
func pushModelToDomain(m PushModel) domain.Push {
	return domain.Push{
		Ancestor:      m.Ancestor,
		Branch:        m.Branch,
		CreatedAt:     m.CreatedAt,
		Failed:        m.Failed,
		FailureReason: m.FailureReason,
		FailureStage:  domain.Stage(m.FailureStage),
		FailureStep:   domain.Step(m.FailureStep),
		Processed:     m.Processed,
		ProcessedAt:   m.ProcessedAt,
		SHA:           m.SHA,
	}
}

// domainToPushModel converts a domain.Push to PushModel (GORM).
// Pipeline outcome columns are owned by the queue and are not copied.
func domainToPushModel(p domain.Push) PushModel {
	return PushModel{
		Ancestor:  p.Ancestor,
		Branch:    p.Branch,
		CreatedAt: p.CreatedAt,
		SHA:       p.SHA,
	}
}

func chunkStatModelToDomain(m ChunkStatModel) domain.ChunkStat {
	return domain.ChunkStat{
		Chunk:      m.Chunk,
		CreatedAt:  m.CreatedAt,
		GzipSize:   m.GzipSize,
		Hash:       m.Hash,
		ParsedSize: m.ParsedSize,
		SHA:        m.SHA,
		StatSize:   m.StatSize,
	}
}

func domainToChunkStatModel(s domain.ChunkStat) ChunkStatModel {
	return ChunkStatModel{
		Chunk:      s.Chunk,
		CreatedAt:  s.CreatedAt,
		GzipSize:   s.GzipSize,
		Hash:       s.Hash,
		ParsedSize: s.ParsedSize,
		SHA:        s.SHA,
		StatSize:   s.StatSize,
	}
}
