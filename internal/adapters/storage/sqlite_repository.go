package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/logging"
	"github.com/renato0307/cereja/internal/ports"
)

// SQLiteArchive implements ports.HistoryArchive using GORM
type SQLiteArchive struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.HistoryArchive = (*SQLiteArchive)(nil)

// gormLogger wraps the cereja logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("CEREJA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteArchive opens (or creates) the history database
func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&OperationModel{}, &OperationItemModel{}, &OperationTaskModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate archive schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteArchive{db: db}, nil
}

// Close closes the database connection
func (a *SQLiteArchive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Archive stores a terminal operation. Archiving the same operation twice
// replaces its rows, so a retried completion does not duplicate history.
func (a *SQLiteArchive) Archive(ctx context.Context, op *domain.Operation) error {
	if !op.Phase.Terminal() {
		return fmt.Errorf("operation %s is still %s, only terminal operations are archived", op.OperationID, op.Phase)
	}

	model, items, tasks := operationToModels(op)

	err := withRetry(func() error {
		return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("operation_id = ?", op.OperationID).Delete(&OperationItemModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear archived items: %w", err)
			}
			if err := tx.Where("operation_id = ?", op.OperationID).Delete(&OperationTaskModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear archived tasks: %w", err)
			}
			if err := tx.Where("operation_id = ?", op.OperationID).Delete(&OperationModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear archived operation: %w", err)
			}

			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to archive operation: %w", err)
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return fmt.Errorf("failed to archive items: %w", err)
				}
			}
			if len(tasks) > 0 {
				if err := tx.Create(&tasks).Error; err != nil {
					return fmt.Errorf("failed to archive tasks: %w", err)
				}
			}
			return nil
		})
	}, 3)
	if err != nil {
		return err
	}

	logging.Logger.Info("Archived operation",
		"operation_id", op.OperationID,
		"release", op.ReleaseName,
		"final_status", op.FinalStatus)
	return nil
}

// Recent implements ports.HistoryReader
func (a *SQLiteArchive) Recent(ctx context.Context, limit int) ([]domain.Operation, error) {
	if limit <= 0 {
		limit = 20
	}

	var models []OperationModel
	var items []OperationItemModel
	var tasks []OperationTaskModel

	err := withRetry(func() error {
		return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("completed_at DESC").Limit(limit).Find(&models).Error; err != nil {
				return err
			}
			if len(models) == 0 {
				return nil
			}

			ids := make([]string, len(models))
			for i, m := range models {
				ids[i] = m.OperationID
			}

			if err := tx.Where("operation_id IN ?", ids).Order("operation_id, position").Find(&items).Error; err != nil {
				return err
			}
			return tx.Where("operation_id IN ?", ids).Order("operation_id, position").Find(&tasks).Error
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	// Build lookup maps
	itemMap := make(map[string][]OperationItemModel)
	for _, item := range items {
		itemMap[item.OperationID] = append(itemMap[item.OperationID], item)
	}
	taskMap := make(map[string][]OperationTaskModel)
	for _, task := range tasks {
		taskMap[task.OperationID] = append(taskMap[task.OperationID], task)
	}

	result := make([]domain.Operation, len(models))
	for i, m := range models {
		result[i] = modelsToOperation(m, itemMap[m.OperationID], taskMap[m.OperationID])
	}
	return result, nil
}

// Prune implements ports.HistoryPruner. It keeps the newest entries and
// reports how many operations were dropped.
func (a *SQLiteArchive) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	var dropped int64
	err := withRetry(func() error {
		return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var stale []string
			err := tx.Model(&OperationModel{}).
				Order("completed_at DESC").
				Offset(keep).
				Limit(-1).
				Pluck("operation_id", &stale).Error
			if err != nil {
				return err
			}
			if len(stale) == 0 {
				dropped = 0
				return nil
			}

			if err := tx.Where("operation_id IN ?", stale).Delete(&OperationItemModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("operation_id IN ?", stale).Delete(&OperationTaskModel{}).Error; err != nil {
				return err
			}
			res := tx.Where("operation_id IN ?", stale).Delete(&OperationModel{})
			if res.Error != nil {
				return res.Error
			}
			dropped = res.RowsAffected
			return nil
		})
	}, 3)
	if err != nil {
		return 0, err
	}

	if dropped > 0 {
		logging.Logger.Info("Pruned archive", "dropped", dropped, "keep", keep)
	}
	return dropped, nil
}

// withRetry retries a database operation when SQLite reports the file is
// busy or locked
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
