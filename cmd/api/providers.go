package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/xiebiao/bookapi/docs"
	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/internal/infrastructure/persistence/orm"
	"github.com/xiebiao/bookapi/internal/interface/http/handler"
	"github.com/xiebiao/bookapi/internal/interface/http/middleware"
	"github.com/xiebiao/bookapi/pkg/logger"
	"github.com/xiebiao/bookapi/pkg/response"
)

// App 组装完成的应用
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Engine *gin.Engine
}

func newApp(cfg *config.Config, log *zap.Logger, engine *gin.Engine) *App {
	return &App{Config: cfg, Logger: log, Engine: engine}
}

// provideLogger 日志配置 → zap.Logger，release模式使用生产环境编码
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	return logger.New(logger.Options{
		Env:          cfg.Env,
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
		Development:  cfg.Server.Mode != gin.ReleaseMode,
	})
}

// provideDB 创建数据库连接，按配置写入示例数据
// cleanup关闭底层连接池
func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := orm.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}

	if cfg.Seed {
		if err := orm.Seed(context.Background(), db, log); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("初始化示例数据失败: %w", err)
		}
	}

	return db, cleanup, nil
}

// provideGinEngine 创建Gin引擎并注册路由
func provideGinEngine(cfg *config.Config, log *zap.Logger, bookHandler *handler.BookHandler) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(log), middleware.Metrics(), gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI: http://localhost:3000/swagger/index.html
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	bookHandler.RegisterRoutes(r.Group("/api/v1"))

	return r
}
