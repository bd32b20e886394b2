package storage

import "time"

// PushModel is the GORM model for the pushes table
type PushModel struct {
	Ancestor      *string    `gorm:"default:null"`
	Branch        string     `gorm:"not null;index:idx_pushes_branch"`
	CreatedAt     time.Time  `gorm:"not null;index:idx_pushes_queue,priority:2"`
	Failed        bool       `gorm:"not null;default:false"`
	FailureReason string     `gorm:"not null;default:''"`
	FailureStage  string     `gorm:"not null;default:''"`
	FailureStep   string     `gorm:"not null;default:''"`
	Processed     bool       `gorm:"not null;default:false;index:idx_pushes_queue,priority:1"`
	ProcessedAt   *time.Time `gorm:"default:null"`
	SHA           string     `gorm:"primaryKey;column:sha"`
}

// TableName specifies the table name for GORM
func (PushModel) TableName() string { return "pushes" }

// ChunkStatModel is the GORM model for the chunk_stats table
type ChunkStatModel struct {
	Chunk      string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	GzipSize   int64     `gorm:"not null;default:0"`
	Hash       string    `gorm:"not null;default:''"`
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ParsedSize int64     `gorm:"not null;default:0"`
	SHA        string    `gorm:"not null;column:sha;index:idx_chunk_stats_sha"`
	StatSize   int64     `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ChunkStatModel) TableName() string { return "chunk_stats" }
