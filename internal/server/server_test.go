package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"studynotes-be/internal/bootstrap"
	"studynotes-be/internal/config"
	"studynotes-be/internal/model"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/pkg/serverutils"
	"studynotes-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "server-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			CorsAllowedOrigins: "http://localhost:3001",
			ViewTopic:          "NOTE_VIEWED",
		},
		Cache: config.CacheConfig{Driver: "memory", PageSize: 9},
		Auth:  config.AuthConfig{JwtSecret: testSecret},
	}

	container := bootstrap.NewContainer(db, cfg, logger.NewNopLogger())
	t.Cleanup(container.Close)
	return New(cfg, container)
}

func postGraphQL(t *testing.T, s *Server, token, body string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := s.GetApp().Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestHealthRoute(t *testing.T) {
	s := newTestServer(t)
	res, err := s.GetApp().Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
}

func TestGraphQLRouteEndToEnd(t *testing.T) {
	s := newTestServer(t)
	token, err := serverutils.SignToken("alice", testSecret)
	require.NoError(t, err)

	out := postGraphQL(t, s, token, `{"query":"mutation { createNotes(title: \"Calculus\", youtube_url: \"https://youtube.com/watch?v=1\", pdf_url: \"https://files.example.com/c.pdf\") }"}`)
	require.Nil(t, out["errors"])

	out = postGraphQL(t, s, token, `{"query":"{ getNotes(limit: 9) { totalCount notes { title } } }"}`)
	require.Nil(t, out["errors"])
	page := out["data"].(map[string]interface{})["getNotes"].(map[string]interface{})
	assert.EqualValues(t, 1, page["totalCount"])

	out = postGraphQL(t, s, "", `{"query":"{ getNotes { totalCount } }"}`)
	errs := out["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "Not authenticated", errs[0].(map[string]interface{})["message"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest("OPTIONS", "/api/graphql", nil)
	req.Header.Set("Origin", "http://localhost:3001")
	req.Header.Set("Access-Control-Request-Method", "POST")

	res, err := s.GetApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001", res.Header.Get("Access-Control-Allow-Origin"))
}
