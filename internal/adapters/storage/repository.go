package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/bundlestats/internal/domain"
	"github.com/renato0307/bundlestats/internal/logging"
	"github.com/renato0307/bundlestats/internal/ports"
)

const maxRetries = 3

// Repository implements ports.PushRepository using GORM over SQLite or PostgreSQL
type Repository struct {
	db      *gorm.DB
	retries int
}

// Verify interface compliance at compile time
var _ ports.PushRepository = (*Repository)(nil)

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server rather than a SQLite file
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// NewRepository opens the database addressed by dsn and migrates the schema.
// A postgres:// URL selects PostgreSQL; anything else is a SQLite file path.
func NewRepository(dsn string, debug bool) (*Repository, error) {
	cfg := &gorm.Config{
		Logger:         newGormLogger(debug),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		PrepareStmt:    false,
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	if IsPostgresDSN(dsn) {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
	} else {
		db, err = openSQLite(dsn, cfg)
		if err != nil {
			return nil, err
		}
	}

	if err := db.AutoMigrate(&PushModel{}, &ChunkStatModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Database opened", "postgres", IsPostgresDSN(dsn))
	return &Repository{db: db, retries: maxRetries}, nil
}

func openSQLite(dbPath string, cfg *gorm.Config) (*gorm.DB, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI read while the worker writes
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	return db, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ListPendingPushes implements PushQueue.ListPendingPushes
func (r *Repository) ListPendingPushes(ctx context.Context, limit int) ([]domain.Push, error) {
	var models []PushModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).
			Where("processed = ?", false).
			Order("created_at ASC").
			Order("sha ASC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, r.retries)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending pushes: %w", err)
	}

	return pushModelsToDomain(models), nil
}

// SetAncestor implements PushQueue.SetAncestor.
// The ancestor is written only while unset; the same value again is a no-op.
func (r *Repository) SetAncestor(ctx context.Context, sha, ancestor string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&PushModel{}).
				Where("sha = ? AND ancestor IS NULL", sha).
				Update("ancestor", ancestor)
			if result.Error != nil {
				return fmt.Errorf("failed to set ancestor: %w", result.Error)
			}
			if result.RowsAffected > 0 {
				return nil
			}

			var existing PushModel
			if err := tx.Where("sha = ?", sha).First(&existing).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("push %s: %w", sha, domain.ErrPushNotFound)
				}
				return err
			}
			if existing.Ancestor != nil && *existing.Ancestor == ancestor {
				return nil
			}
			return fmt.Errorf("push %s has ancestor %s, refusing %s: %w",
				sha, pushModelToDomain(existing).AncestorOrEmpty(), ancestor, domain.ErrAncestorConflict)
		})
	}, r.retries)
}

// MarkFailed implements PushQueue.MarkFailed.
// Failure details of a push already processed are left untouched.
func (r *Repository) MarkFailed(ctx context.Context, sha string, failure domain.PushFailure) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&PushModel{}).
				Where("sha = ? AND processed = ?", sha, false).
				Updates(map[string]any{
					"failed":         true,
					"failure_reason": failure.Reason,
					"failure_stage":  string(failure.Stage),
					"failure_step":   string(failure.Step),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to record failure: %w", result.Error)
			}
			if result.RowsAffected > 0 {
				return nil
			}
			return requireExists(tx, sha)
		})
	}, r.retries)
}

// MarkProcessed implements PushQueue.MarkProcessed. It is idempotent.
func (r *Repository) MarkProcessed(ctx context.Context, sha string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&PushModel{}).
				Where("sha = ? AND processed = ?", sha, false).
				Updates(map[string]any{
					"processed":    true,
					"processed_at": r.db.NowFunc(),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to mark processed: %w", result.Error)
			}
			if result.RowsAffected > 0 {
				return nil
			}
			return requireExists(tx, sha)
		})
	}, r.retries)
}

// InsertChunkStat implements PushQueue.InsertChunkStat
func (r *Repository) InsertChunkStat(ctx context.Context, stat domain.ChunkStat) error {
	model := domainToChunkStatModel(stat)
	return withRetry(func() error {
		model.ID = 0
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to insert chunk stat: %w", err)
		}
		return nil
	}, r.retries)
}

// AddPush implements PushWriter.AddPush
func (r *Repository) AddPush(ctx context.Context, push domain.Push) error {
	if err := domain.ValidateRevision(push.SHA); err != nil {
		return fmt.Errorf("push %q: %w", push.SHA, err)
	}
	if push.Branch == "" {
		return fmt.Errorf("push %s: branch is required", push.SHA)
	}

	model := domainToPushModel(push)
	return withRetry(func() error {
		err := r.db.WithContext(ctx).Create(&model).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("push %s: %w", push.SHA, domain.ErrPushExists)
		}
		if err != nil {
			return fmt.Errorf("failed to add push: %w", err)
		}
		return nil
	}, r.retries)
}

// GetPush implements PushReader.GetPush
func (r *Repository) GetPush(ctx context.Context, sha string) (*domain.Push, error) {
	var model PushModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("sha = ?", sha).First(&model).Error
	}, r.retries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("push %s: %w", sha, domain.ErrPushNotFound)
		}
		return nil, err
	}

	push := pushModelToDomain(model)
	return &push, nil
}

// ListPushes implements PushReader.ListPushes, most recent first
func (r *Repository) ListPushes(ctx context.Context, filter domain.PushFilter) ([]domain.Push, error) {
	var models []PushModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("created_at DESC").Order("sha DESC")
		if filter.Branch != "" {
			query = query.Where("branch = ?", filter.Branch)
		}
		if filter.PendingOnly {
			query = query.Where("processed = ?", false)
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		return query.Find(&models).Error
	}, r.retries)
	if err != nil {
		return nil, fmt.Errorf("failed to list pushes: %w", err)
	}

	return pushModelsToDomain(models), nil
}

// ListChunkStats implements PushReader.ListChunkStats, in insertion order
func (r *Repository) ListChunkStats(ctx context.Context, sha string) ([]domain.ChunkStat, error) {
	var models []ChunkStatModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("sha = ?", sha).Order("id ASC").Find(&models).Error
	}, r.retries)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunk stats: %w", err)
	}

	result := make([]domain.ChunkStat, len(models))
	for i, m := range models {
		result[i] = chunkStatModelToDomain(m)
	}
	return result, nil
}

func pushModelsToDomain(models []PushModel) []domain.Push {
	result := make([]domain.Push, len(models))
	for i, m := range models {
		result[i] = pushModelToDomain(m)
	}
	return result
}

func requireExists(tx *gorm.DB, sha string) error {
	var count int64
	if err := tx.Model(&PushModel{}).Where("sha = ?", sha).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("push %s: %w", sha, domain.ErrPushNotFound)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
