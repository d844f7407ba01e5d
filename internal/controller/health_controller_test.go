package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"studynotes-be/pkg/database"
	"studynotes-be/pkg/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newHealthApp(t *testing.T, cache store.Store) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:", false)
	require.NoError(t, err)

	app := fiber.New()
	NewHealthController(db, cache).RegisterRoutes(app.Group("/api"))
	return app, db
}

func checkHealth(t *testing.T, app *fiber.App) (int, map[string]interface{}) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return res.StatusCode, out["data"].(map[string]interface{})
}

func TestHealthAllUp(t *testing.T) {
	app, _ := newHealthApp(t, store.NewMemoryStore(time.Minute))

	status, data := checkHealth(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", data["database"])
	assert.Equal(t, "ok", data["cache"])
}

func TestHealthCacheDownStillServes(t *testing.T) {
	mr := miniredis.RunT(t)
	client := store.NewRedisClient("redis://" + mr.Addr())
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	app, _ := newHealthApp(t, store.NewRedisStore(client))

	status, data := checkHealth(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "unavailable", data["cache"])
}

func TestHealthDatabaseDown(t *testing.T) {
	app, db := newHealthApp(t, store.NewMemoryStore(time.Minute))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status, data := checkHealth(t, app)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "unavailable", data["database"])
}
