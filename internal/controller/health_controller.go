package controller

import (
	"context"
	"time"

	"studynotes-be/internal/pkg/serverutils"
	"studynotes-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

const cachePingTimeout = 500 * time.Millisecond

type healthStatus struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type healthController struct {
	db    *gorm.DB
	cache store.Store
}

func NewHealthController(db *gorm.DB, cache store.Store) IHealthController {
	return &healthController{
		db:    db,
		cache: cache,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Check)
}

// Check answers 503 only when the database is unreachable.
func (c *healthController) Check(ctx *fiber.Ctx) error {
	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
	defer cancel()

	status := healthStatus{Database: "ok", Cache: "ok"}

	dbOK := true
	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(pingCtx) != nil {
		status.Database = "unavailable"
		dbOK = false
	}
	cacheCtx, cancelCache := context.WithTimeout(ctx.UserContext(), cachePingTimeout)
	defer cancelCache()
	if c.cache == nil || c.cache.Ping(cacheCtx) != nil {
		status.Cache = "unavailable"
	}

	if !dbOK {
		res := serverutils.Response[healthStatus]{
			Success: false,
			Code:    fiber.StatusServiceUnavailable,
			Message: "Service unavailable",
			Data:    status,
		}
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return ctx.JSON(serverutils.SuccessResponse("Service healthy", status))
}
