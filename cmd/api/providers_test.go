package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/domain/book"
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/orm"
	"github.com/xiebiao/bookapi/internal/interface/http/handler"
)

func testConfig(mode string) *config.Config {
	return &config.Config{
		Env:      "test",
		Seed:     true,
		Server:   config.ServerConfig{Port: 3000, Mode: mode},
		Database: config.DatabaseConfig{Dialect: config.DialectSQLite, DBName: ":memory:"},
	}
}

func newTestEngine(t *testing.T, mode string) http.Handler {
	t.Helper()
	cfg := testConfig(mode)
	db, cleanup, err := provideDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	bookHandler := handler.NewBookHandler(book.NewService(orm.NewBookRepository(db)))
	return provideGinEngine(cfg, zap.NewNop(), bookHandler)
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestEngine_Ping(t *testing.T) {
	w := serve(newTestEngine(t, "test"), http.MethodGet, "/ping")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "pong", body.Data["message"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestEngine_SeededBooks(t *testing.T) {
	w := serve(newTestEngine(t, "test"), http.MethodGet, "/api/v1/books/2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"The Shop Before Life"`)
}

func TestEngine_Metrics(t *testing.T) {
	engine := newTestEngine(t, "test")
	serve(engine, http.MethodGet, "/api/v1/books")

	w := serve(engine, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/api/v1/books",status="200"}`)
}

func TestEngine_Swagger(t *testing.T) {
	w := serve(newTestEngine(t, "test"), http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/books/{bookId}"`)

	w = serve(newTestEngine(t, "release"), http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusNotFound, w.Code, "release模式不暴露文档")
}

func TestProvideLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	cfg := testConfig("release")
	cfg.Log = config.LogConfig{Level: "warn", Format: "json", Output: path}

	log, cleanup, err := provideLogger(cfg)
	require.NoError(t, err)
	log.Info("忽略")
	log.Warn("磁盘空间不足")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"磁盘空间不足"`)
	assert.Contains(t, string(data), `"level":"warn"`, "release模式使用生产环境编码")
	assert.NotContains(t, string(data), "忽略")
}
