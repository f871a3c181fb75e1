package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/haydnkong/usercenter/docs"
	appuser "github.com/haydnkong/usercenter/internal/application/user"
	"github.com/haydnkong/usercenter/internal/domain/user"
	"github.com/haydnkong/usercenter/internal/infrastructure/config"
	"github.com/haydnkong/usercenter/internal/infrastructure/persistence/mysql"
	"github.com/haydnkong/usercenter/internal/interface/http/handler"
	"github.com/haydnkong/usercenter/internal/interface/http/middleware"
	"github.com/haydnkong/usercenter/pkg/logger"
	"github.com/haydnkong/usercenter/pkg/metrics"
	"github.com/haydnkong/usercenter/pkg/response"
)

// @title           UserCenter API
// @version         1.0
// @description     用户中心服务：按手机号注册、查询、更新、删除用户

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire注入器，wire gen后可切换）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		return
	}

	// 2. 初始化日志
	logger.Init("usercenter", cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	logger.Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)).
		Msg("配置加载成功")

	// 3. 初始化指标
	metrics.InitMetrics()

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化数据库失败")
	}

	// 5. 依赖注入（手动组装）
	// 依赖链：Repository ← Service ← UseCase ← Handler
	userRepo := mysql.NewUserRepository(db)
	verifier := user.NewVerifier(cfg.Security.PasswordScheme)
	userService := user.NewService(userRepo, verifier)

	registerUseCase := appuser.NewRegisterUseCase(userService)
	getUseCase := appuser.NewGetUserUseCase(userService)
	updateUseCase := appuser.NewUpdateUserUseCase(userService)
	deleteUseCase := appuser.NewDeleteUserUseCase(userService)

	userHandler := handler.NewUserHandler(registerUseCase, getUseCase, updateUseCase, deleteUseCase)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	// 7. 注册路由
	registerRoutes(r, userHandler)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("服务启动")

	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("启动服务失败")
	}
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, userHandler *handler.UserHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档：http://localhost:<port>/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 用户模块
	users := r.Group("/user")
	{
		users.POST("/register", userHandler.Register)
		users.GET("/:telephone", userHandler.Get)
		users.PUT("/:telephone", userHandler.Update)
		users.DELETE("/:telephone", userHandler.Delete)
	}
}
