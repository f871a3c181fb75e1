package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/haydnkong/usercenter/internal/infrastructure/config"
	"github.com/haydnkong/usercenter/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 连接池配置
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.Info().Str("addr", fmt.Sprintf("%s:%d", cfg.Database.Host, cfg.Database.Port)).Msg("数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具维护表结构
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 4. Telephone的UNIQUE索引是防止并发重复注册的最终兜底
//    （Service层的存在性检查只是提前拦截）
type UserModel struct {
	ID             uint    `gorm:"primaryKey"`
	Name           string  `gorm:"size:50;not null;comment:姓名"`
	Telephone      string  `gorm:"uniqueIndex;size:11;not null;comment:手机号（业务主键）"`
	Password       string  `gorm:"size:255;not null;comment:密码"`
	Ledger         string  `gorm:"size:20;not null;comment:账本类型(daily/business)"`
	SubscriberType string  `gorm:"size:20;not null;comment:订阅类型"`
	Email          *string `gorm:"size:100;comment:邮箱(可选)"`
	Wechat         *string `gorm:"size:50;comment:微信号(可选)"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "user"
}
