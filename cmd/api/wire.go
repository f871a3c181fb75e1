//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// Wire在编译期生成依赖组装代码（区别于运行时反射注入）：
// Step 1: 编写本文件，定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go
// Step 4: main.go调用InitializeApp()替换手动组装

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appuser "github.com/haydnkong/usercenter/internal/application/user"
	"github.com/haydnkong/usercenter/internal/domain/user"
	"github.com/haydnkong/usercenter/internal/infrastructure/config"
	"github.com/haydnkong/usercenter/internal/infrastructure/persistence/mysql"
	"github.com/haydnkong/usercenter/internal/interface/http/handler"
	"github.com/haydnkong/usercenter/internal/interface/http/middleware"
	"github.com/haydnkong/usercenter/pkg/response"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load, // 加载配置文件
	mysql.NewDB, // 创建MySQL连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository, // 用户仓储
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	provideVerifier, // 密码校验器（从config提取scheme）
	user.NewService, // 用户领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,   // 注册用例
	appuser.NewGetUserUseCase,    // 查询用例
	appuser.NewUpdateUserUseCase, // 更新用例
	appuser.NewDeleteUserUseCase, // 删除用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler, // 用户处理器
)

// provideVerifier 从配置创建密码校验器
// user.NewVerifier只需要scheme字符串，Wire无法自动从Config提取字段
func provideVerifier(cfg *config.Config) user.PasswordVerifier {
	return user.NewVerifier(cfg.Security.PasswordScheme)
}

// provideGinEngine 创建并配置Gin引擎（注册中间件和全部路由）
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/user")
	{
		users.POST("/register", userHandler.Register)
		users.GET("/:telephone", userHandler.Get)
		users.PUT("/:telephone", userHandler.Update)
		users.DELETE("/:telephone", userHandler.Delete)
	}

	return r
}

// InitializeApp 初始化整个应用
// Wire会分析依赖链并在wire_gen.go中生成实际的初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
