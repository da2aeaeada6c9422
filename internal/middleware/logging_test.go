package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Дымовой тест: проверяем, что мидлварь логирования не паникует и корректно проксирует ответ
func TestWithLogging_Smoke(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot) // 418
		_, _ = w.Write([]byte("hello"))
	})

	h := WithLogging(next)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("status passthrough failed: got %d", rr.Code)
	}
	if rr.Body.String() != "hello" {
		t.Fatalf("body passthrough failed: %q", rr.Body.String())
	}
	if rr.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("request id header must be set")
	}
}

func TestWithLogging_RecordsStatusSizeAndRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(nil) })

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RequestIDFromContext(r.Context())
		_, _ = w.Write([]byte("abc"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/clothes?season=Fall", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	WithLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, "req-42", rr.Header().Get(RequestIDHeader), "client request id must be echoed")
	assert.Equal(t, "req-42", seen)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		f := entries[0].ContextMap()
		assert.Equal(t, "POST", f["method"])
		assert.Equal(t, "/api/clothes?season=Fall", f["uri"])
		assert.EqualValues(t, http.StatusOK, f["status"])
		assert.EqualValues(t, 3, f["size"])
		assert.Equal(t, "req-42", f["request_id"])
	}
}

func TestWithLogging_GeneratesDistinctIDs(t *testing.T) {
	SetLogger(zap.NewNop().Sugar())
	h := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	ids := map[string]struct{}{}
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		ids[rr.Header().Get(RequestIDHeader)] = struct{}{}
	}
	assert.Len(t, ids, 3)
}
