package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/config"
	"github.com/makeoo/recipe-api/internal/database"
	"github.com/makeoo/recipe-api/internal/flags"
	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/router"
	"github.com/makeoo/recipe-api/internal/service"
	"github.com/makeoo/recipe-api/internal/service/cron_ser"
	"github.com/makeoo/recipe-api/pkg/cache"
	"github.com/makeoo/recipe-api/pkg/response"
)

func main() {
	// 初始化配置
	if err := config.Init("."); err != nil {
		fmt.Printf("初始化配置失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.GetConfig()

	// 初始化日志
	logger.InitLogger(&cfg.Log)
	defer logger.Close()

	response.SetDebugMode(cfg.App.Mode == "debug")
	if cfg.App.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		db         *gorm.DB
		rdb        *redis.Client
		cacheStore cache.Cache
		cronRunner *cron.Cron
	)

	if cfg.App.MockMode {
		logger.Info("演示模式启动，跳过MySQL和Redis连接")
	} else {
		var err error
		db, err = database.InitMySQL(&cfg.MySQL)
		if err != nil {
			logger.Fatal("连接MySQL失败", zap.Error(err))
		}

		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Fatal("连接Redis失败", zap.Error(err))
		}
		cacheStore = cache.NewRedisCache(rdb)

		// 命令行子命令（建表、写入演示数据），执行完会直接退出
		flags.NewFlags(db)

		// 定时刷新分类缓存
		cronRunner = cron_ser.CronInit(service.NewCategoryService(db, cacheStore))
	}

	engine := router.Setup(router.Options{
		Config: cfg,
		DB:     db,
		Cache:  cacheStore,
		Redis:  rdb,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: engine,
	}

	go func() {
		logger.Info("服务启动",
			zap.String("name", cfg.App.Name),
			zap.Int("port", cfg.App.Port),
			zap.String("mode", cfg.App.Mode),
			zap.Bool("mock_mode", cfg.App.MockMode))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("收到退出信号，开始优雅关闭")

	if cronRunner != nil {
		cronRunner.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭HTTP服务失败", zap.Error(err))
	}

	if cacheStore != nil {
		if err := cacheStore.Close(); err != nil {
			logger.Error("关闭Redis连接失败", zap.Error(err))
		}
	}

	logger.Info("服务已退出")
}
