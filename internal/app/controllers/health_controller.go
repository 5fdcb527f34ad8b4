package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// HealthController reports process and dependency health.
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{Ctx: ctx, Container: container}
}

// HandleHealthFunc returns a gin handler dispatching to the health
// controller.
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		default:
			controller.Health()
		}
	}
}

// Ping
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"pong": time.Now().UTC()})
}

// Health
// @Summary Readiness probe
// @Description Reports the state of the database and the cache. The endpoint answers 200 as long as the process itself is up; per-dependency state is in the body.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (c *HealthController) Health() {
	status := gin.H{"database": "ok", "cache": "ok"}

	db := c.Container.GetDB()
	if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
	}

	if rs, ok := c.Container.GetService("redis").(*services.RedisService); ok && rs != nil {
		if err := rs.Ping(); err != nil {
			status["cache"] = "unreachable"
		}
	} else {
		status["cache"] = "disabled"
	}

	response.Success(c.Ctx, status)
}
