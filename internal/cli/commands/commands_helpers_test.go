package commands

import (
	"Wardrobe/internal/config"
	"Wardrobe/internal/handlers"
	"Wardrobe/internal/repo"
	"Wardrobe/internal/service"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// withServer поднимает настоящий API поверх временной SQLite и возвращает конфиг клиента.
func withServer(t *testing.T) *config.Config {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "cli_test.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := zap.NewNop().Sugar()
	svc := service.NewClothingItemService(repo.NewClothingItemRepository(db), nil, logger)
	cfg := &config.Config{CORSOrigins: []string{"*"}}
	ts := httptest.NewServer(handlers.NewHandler(svc, logger, cfg).Router)
	t.Cleanup(ts.Close)

	cfg.ServerURL = ts.URL
	return cfg
}
