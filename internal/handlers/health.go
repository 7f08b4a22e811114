package handlers

import (
	"finlytics/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Service
}

func NewHealthHandler(db *gorm.DB, cacheSvc *cache.Service) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheSvc}
}

// Check reports service health; 503 when the database is unreachable.
// Redis is optional so a cache failure only degrades the payload.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
	}

	redisStatus := "connected"
	if h.cache == nil {
		redisStatus = "disabled"
	} else if err := h.cache.HealthCheck(c.Context()); err != nil {
		redisStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":   "healthy",
		"database": "connected",
		"redis":    redisStatus,
	})
}
