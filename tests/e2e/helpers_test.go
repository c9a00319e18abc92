//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/seed"
	"github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/bizcrm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/bizcrm-backend/internal/app"
	"github.com/heartmarshall/bizcrm-backend/internal/config"
	usersvc "github.com/heartmarshall/bizcrm-backend/internal/service/user"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	UserID int64
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer seeds the shared container database and serves the same
// handler the production binary mounts.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	ctx := context.Background()

	seeder := seed.New(logger, pool, postgres.NewTxManager(pool), seed.Admin{
		Username: "admin",
		Password: "admin123",
		RealName: "系统管理员",
	})
	_, err := seeder.SeedIfEmpty(ctx)
	require.NoError(t, err, "seed")

	users := usersvc.NewService(logger, userrepo.New(pool))
	userID, err := users.ResolveID(ctx, "admin")
	require.NoError(t, err, "resolve admin")

	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
	}

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, users, userID, nil))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		UserID: userID,
	}
}

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding of the response body into dst.
func (ts *testServer) doJSON(t *testing.T, method, path string, body, dst any) int {
	t.Helper()

	status, raw := ts.do(t, method, path, body)
	if dst != nil {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		require.NoError(t, dec.Decode(dst), "decode %s %s: %s", method, path, raw)
	}
	return status
}

// create posts a record and returns its id.
func (ts *testServer) create(t *testing.T, module string, payload map[string]any) int64 {
	t.Helper()

	var resp struct {
		ID int64 `json:"id"`
	}
	status := ts.doJSON(t, http.MethodPost, "/api/"+module, payload, &resp)
	require.Equal(t, http.StatusCreated, status)
	require.Positive(t, resp.ID)
	return resp.ID
}

// get fetches one record, failing the test unless it answers 200.
func (ts *testServer) get(t *testing.T, path string) map[string]any {
	t.Helper()

	var rec map[string]any
	status := ts.doJSON(t, http.MethodGet, path, nil, &rec)
	require.Equal(t, http.StatusOK, status, "GET %s", path)
	return rec
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
