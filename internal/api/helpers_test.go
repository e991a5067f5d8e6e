package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projectapi/internal/app"
	"github.com/thenoetrevino/projectapi/internal/database"
	"github.com/thenoetrevino/projectapi/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router  *gin.Engine
	db      *sql.DB
	metrics *Metrics
	logs    *bytes.Buffer
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	metrics := NewMetrics()

	a := app.New(database.NewRepository(db), app.WithLogger(logger))
	return &testEnv{
		router:  NewRouter(a, metrics),
		db:      db,
		metrics: metrics,
		logs:    logs,
	}
}

// do sends a request; body may be nil, a string (sent raw) or a value to marshal
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func decodeArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	require.NotNil(t, out, "arrays are never null")
	return out
}

func (e *testEnv) createProject(t *testing.T, name string) int64 {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/projects", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int64(decodeObject(t, rec)["id"].(float64))
}

func (e *testEnv) createTask(t *testing.T, projectID int64, title string) int64 {
	t.Helper()
	rec := e.do(t, http.MethodPost, fmt.Sprintf("/projects/%d/tasks", projectID), map[string]any{"title": title})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return int64(decodeObject(t, rec)["id"].(float64))
}
