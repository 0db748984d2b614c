package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/makeoo/recipe-api/internal/config"
	"github.com/makeoo/recipe-api/internal/logger"
)

// RateLimit 基于Redis固定窗口的限流中间件
// Redis不可用时放行，限流是保护手段，不能成为单点
func RateLimit(rdb *redis.Client, cfg config.RateLimitConfig) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second

	return func(c *gin.Context) {
		if !cfg.Enabled || rdb == nil {
			c.Next()
			return
		}

		// 健康检查不参与限流
		if strings.HasPrefix(c.Request.URL.Path, "/health") {
			c.Next()
			return
		}

		// 按IP和User-Agent组合限流
		userAgent := c.Request.UserAgent()
		if userAgent == "" {
			userAgent = "unknown"
		}
		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), userAgent)

		ctx := c.Request.Context()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("限流计数失败，本次请求放行", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				logger.Warn("设置限流窗口过期失败", zap.String("key", key), zap.Error(err))
			}
		}

		if count > int64(cfg.MaxRequests) {
			retryAfter := int64(window.Seconds())
			if ttl, err := rdb.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				retryAfter = int64(ttl.Seconds())
			}

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"message":    "请求过于频繁，请稍后再试",
					"status":     http.StatusTooManyRequests,
					"timestamp":  time.Now().UTC().Format(time.RFC3339),
					"retryAfter": retryAfter,
				},
			})
			return
		}

		c.Next()
	}
}
