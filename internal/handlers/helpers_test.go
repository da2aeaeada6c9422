package handlers_test

import (
	"Wardrobe/internal/config"
	"Wardrobe/internal/handlers"
	"Wardrobe/internal/model"
	"Wardrobe/internal/repo"
	"Wardrobe/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mock
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) Create(ctx context.Context, in model.ClothingItemInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockItemRepo) FindAll(ctx context.Context, f *repo.Filter) ([]model.ClothingItem, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.ClothingItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) FindByID(ctx context.Context, id int64) (*model.ClothingItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.ClothingItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Update(ctx context.Context, id int64, in model.ClothingItemInput) error {
	return m.Called(ctx, id, in).Error(0)
}
func (m *hMockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ClothingItemRepository = (*hMockItemRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{BaseURL: "localhost:5000", CORSOrigins: []string{"*"}}
}

// newSQLiteRouter поднимает роутер поверх временной файловой SQLite.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "wardrobe_test.db"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := zap.NewNop().Sugar()
	svc := service.NewClothingItemService(repo.NewClothingItemRepository(db), nil, logger)
	return handlers.NewHandler(svc, logger, testConfig()).Router
}

func newMockRouter(t *testing.T) (http.Handler, *hMockItemRepo) {
	t.Helper()
	r := &hMockItemRepo{}
	logger := zap.NewNop().Sugar()
	svc := service.NewClothingItemService(r, nil, logger)
	return handlers.NewHandler(svc, logger, testConfig()).Router, r
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func createItem(t *testing.T, h http.Handler, body string) int64 {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/clothes", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[handlers.CreatedResponse](t, rr).ID
}
