package cron_ser

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/service"
)

// CronInit 启动定时任务
// 分类列表变化频率低，由定时任务主动刷新缓存，避免读请求频繁回源
func CronInit(categoryService *service.CategoryService) *cron.Cron {
	timezone, _ := time.LoadLocation("Asia/Shanghai")
	c := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))

	// 每15分钟刷新一次分类列表缓存
	c.AddFunc("0 */15 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := categoryService.RefreshListCache(ctx); err != nil {
			logger.Warn("刷新分类列表缓存失败", zap.Error(err))
			return
		}
		logger.Debug("分类列表缓存刷新完成")
	})

	c.Start()
	return c
}
