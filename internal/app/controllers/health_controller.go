package controllers

import (
	"net/http"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
)

// HealthController answers liveness and readiness probes
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
	Pool      *database.ConnectionPool
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer, pool *database.ConnectionPool) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
		Pool:      pool,
	}
}

// Ping é a sonda de liveness
func (c *HealthController) Ping() {
	c.Ctx.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status verifica banco e Redis e expõe as estatísticas do pool
func (c *HealthController) Status() {
	status := http.StatusOK
	dbStatus := "ok"
	if err := c.Pool.HealthCheck(); err != nil {
		dbStatus = err.Error()
		status = http.StatusServiceUnavailable
	}

	redisStatus := "ok"
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(c.Ctx.Request.Context()); err != nil {
		redisStatus = err.Error()
	}

	stats, err := c.Pool.Stats()
	if err != nil {
		stats = map[string]interface{}{"erro": err.Error()}
	}

	c.Ctx.JSON(status, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
		"pool":     stats,
	})
}

// HandleHealthFunc returns a gin handler dispatching to the controller
func HandleHealthFunc(container *container.ServiceContainer, pool *database.ConnectionPool, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container, pool)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
