package user

import (
	"context"
)

// Repository 用户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql层
// 3. 这样domain层不依赖任何外部框架（GORM、sqlx等）
// 4. 便于单元测试（Mock此接口）
//
// 所有操作对底层存储恰好一次往返，无批处理、无缓存
type Repository interface {
	// Create 插入一条新用户记录
	// 注意：手机号唯一性由数据库UNIQUE索引兜底，
	// 冲突时应返回errors.ErrTelephoneDuplicate
	Create(ctx context.Context, user *User) error

	// FindByTelephone 按手机号查找用户
	// 如果不存在，返回errors.ErrUserNotFound
	FindByTelephone(ctx context.Context, telephone string) (*User, error)

	// Replace 按ID整行覆盖用户的全部可变字段
	Replace(ctx context.Context, user *User) error

	// DeleteByTelephone 按手机号删除用户
	// 行不存在不视为错误（调用方已经在删除前做过查找）
	DeleteByTelephone(ctx context.Context, telephone string) error
}
