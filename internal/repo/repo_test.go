package repo

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

// newTestDB инициализирует файловую SQLite (modernc.org/sqlite) во временном каталоге:
// у каждого теста своя БД.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "wardrobe_test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
