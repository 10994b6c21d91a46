// storage/sqlite.go - SQLite-backed local storage
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// entry is one persisted key-value pair. No schema versioning.
type entry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "local_storage"
}

// Local is a file-backed Credentials implementation. It plays the role the
// browser's local storage played for the web client.
type Local struct {
	mu sync.Mutex
	db *gorm.DB
}

// Open opens (or creates) the local storage database at path.
func Open(path string) (*Local, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate local storage: %w", err)
	}

	return &Local{db: db}, nil
}

func (l *Local) Get(key string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var e entry
	if err := l.db.First(&e, "key = ?", key).Error; err != nil {
		return ""
	}
	return e.Value
}

func (l *Local) Set(key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if value == "" {
		return l.db.Delete(&entry{}, "key = ?", key).Error
	}
	e := entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return l.db.Save(&e).Error
}

func (l *Local) Token() string {
	return l.Get(KeyAuthToken)
}

func (l *Local) SetToken(token string) error {
	return l.Set(KeyAuthToken, token)
}

// Clear wipes the whole table, mirroring the wholesale clear on logout.
func (l *Local) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db.Where("1 = 1").Delete(&entry{}).Error
}

func (l *Local) Close() error {
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
