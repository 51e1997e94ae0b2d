// Package testutil dựng các phụ thuộc dùng chung cho test
package testutil

import (
	"fmt"
	"io"
	"testing"

	"treehouse-hotel/config"
	"treehouse-hotel/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTestDB mở một SQLite in-memory riêng cho mỗi test, đã migrate schema
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DBConfig{
		Driver: "sqlite",
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
	}
	db, err := config.ConnectDB(cfg, "test", logger.NewLogger(io.Discard, logger.ErrorLevel))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
