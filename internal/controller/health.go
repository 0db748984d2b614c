package controller

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/config"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/pkg/cache"
)

// HealthController 健康检查控制器
type HealthController struct {
	db        *gorm.DB
	cache     cache.Cache
	mockMode  bool
	startTime time.Time
}

// NewHealthController 创建健康检查控制器
func NewHealthController(db *gorm.DB, c cache.Cache, mockMode bool) *HealthController {
	return &HealthController{
		db:        db,
		cache:     c,
		mockMode:  mockMode,
		startTime: time.Now(),
	}
}

// checkDB 数据库连通性检查
func (ctl *HealthController) checkDB(ctx context.Context) bool {
	if ctl.db == nil {
		return false
	}
	sqlDB, err := ctl.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

// checkCache Redis连通性检查
func (ctl *HealthController) checkCache(ctx context.Context) bool {
	if ctl.cache == nil {
		return false
	}
	return ctl.cache.Ping(ctx) == nil
}

// serviceStatus up/down/mock三种状态
func serviceStatus(up, mockMode bool) string {
	if mockMode {
		return "mock"
	}
	if up {
		return "up"
	}
	return "down"
}

// memoryStats 当前进程内存占用，单位MB
func memoryStats() gin.H {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return gin.H{
		"used":  float64(m.HeapAlloc) / 1024 / 1024,
		"total": float64(m.HeapSys) / 1024 / 1024,
		"unit":  "MB",
	}
}

// Check 基本健康检查
// GET /health
func (ctl *HealthController) Check(c *gin.Context) {
	ctx := c.Request.Context()
	cfg := config.GetConfig()

	dbUp := ctl.checkDB(ctx)
	cacheUp := ctl.checkCache(ctx)
	healthy := ctl.mockMode || (dbUp && cacheUp)

	status := http.StatusOK
	statusText := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		statusText = "unhealthy"
		logger.Warn("健康检查失败", zap.Bool("database", dbUp), zap.Bool("redis", cacheUp))
	}

	c.JSON(status, gin.H{
		"status":      statusText,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(ctl.startTime).Seconds(),
		"version":     cfg.App.Version,
		"environment": cfg.App.Mode,
		"services": gin.H{
			"database": gin.H{"status": serviceStatus(dbUp, ctl.mockMode), "type": "MySQL"},
			"cache":    gin.H{"status": serviceStatus(cacheUp, ctl.mockMode), "type": "Redis"},
		},
		"system": gin.H{
			"memory":    memoryStats(),
			"goVersion": runtime.Version(),
			"platform":  runtime.GOOS,
		},
	})
}

// Detailed 带数据库连接池统计的详细健康检查
// GET /health/detailed
func (ctl *HealthController) Detailed(c *gin.Context) {
	ctx := c.Request.Context()
	cfg := config.GetConfig()

	dbUp := ctl.checkDB(ctx)
	cacheUp := ctl.checkCache(ctx)
	healthy := ctl.mockMode || (dbUp && cacheUp)

	var dbStats gin.H
	if ctl.db != nil {
		if sqlDB, err := ctl.db.DB(); err == nil {
			stats := sqlDB.Stats()
			dbStats = gin.H{
				"openConnections": stats.OpenConnections,
				"inUse":           stats.InUse,
				"idle":            stats.Idle,
				"waitCount":       stats.WaitCount,
			}
		}
	}

	status := http.StatusOK
	statusText := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		statusText = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":      statusText,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(ctl.startTime).Seconds(),
		"version":     cfg.App.Version,
		"environment": cfg.App.Mode,
		"services": gin.H{
			"database": gin.H{"status": serviceStatus(dbUp, ctl.mockMode), "type": "MySQL", "stats": dbStats},
			"cache":    gin.H{"status": serviceStatus(cacheUp, ctl.mockMode), "type": "Redis"},
		},
		"system": gin.H{
			"memory":     memoryStats(),
			"goroutines": runtime.NumGoroutine(),
			"cpus":       runtime.NumCPU(),
			"goVersion":  runtime.Version(),
			"platform":   runtime.GOOS,
			"arch":       runtime.GOARCH,
		},
	})
}

// Ready 就绪探针
// GET /health/ready
func (ctl *HealthController) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	if ctl.mockMode || (ctl.checkDB(ctx) && ctl.checkCache(ctx)) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
}

// Live 存活探针
// GET /health/live
func (ctl *HealthController) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(ctl.startTime).Seconds(),
	})
}
