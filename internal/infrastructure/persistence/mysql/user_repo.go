package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/haydnkong/usercenter/internal/domain/user"
	apperrors "github.com/haydnkong/usercenter/pkg/errors"
)

// userRepository 用户仓储实现（MySQL）
// 设计说明：
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误（如手机号重复），转换为业务错误
// 4. 其余存储失败不做细分，统一包装为存储错误（细节只进日志）
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 插入一条新用户记录
// 手机号唯一性由数据库UNIQUE索引保证（而非应用层SELECT再INSERT），
// 捕获MySQL的Duplicate Entry错误，转换为业务错误ErrTelephoneDuplicate
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := toModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrTelephoneDuplicate
		}
		return apperrors.WrapStorage(err, "Database error")
	}

	// 回填自增ID（GORM自动填充）
	u.ID = model.ID

	return nil
}

// FindByTelephone 按手机号查找用户
// Telephone有UNIQUE索引，使用First取唯一记录
func (r *userRepository) FindByTelephone(ctx context.Context, telephone string) (*user.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).Where("telephone = ?", telephone).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapStorage(err, "Database error")
	}

	return toEntity(&model), nil
}

// Replace 按ID整行覆盖全部可变字段
func (r *userRepository) Replace(ctx context.Context, u *user.User) error {
	model := toModel(u)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			// 新手机号撞上已有记录
			return apperrors.ErrTelephoneDuplicate
		}
		return apperrors.WrapStorage(err, "Database error")
	}

	return nil
}

// DeleteByTelephone 按手机号删除用户
// 行不存在不视为错误：调用方已在删除前做过查找，
// 这里不再区分"已删除"和"本来就不存在"
func (r *userRepository) DeleteByTelephone(ctx context.Context, telephone string) error {
	result := r.db.WithContext(ctx).Where("telephone = ?", telephone).Delete(&UserModel{})

	if result.Error != nil {
		return apperrors.WrapStorage(result.Error, "Database error")
	}

	return nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

// toEntity GORM模型 → 领域实体
func toEntity(model *UserModel) *user.User {
	return &user.User{
		ID:             model.ID,
		Name:           model.Name,
		Telephone:      model.Telephone,
		Password:       model.Password,
		Ledger:         model.Ledger,
		SubscriberType: model.SubscriberType,
		Email:          model.Email,
		Wechat:         model.Wechat,
	}
}

// toModel 领域实体 → GORM模型
func toModel(u *user.User) *UserModel {
	return &UserModel{
		ID:             u.ID,
		Name:           u.Name,
		Telephone:      u.Telephone,
		Password:       u.Password,
		Ledger:         u.Ledger,
		SubscriberType: u.SubscriberType,
		Email:          u.Email,
		Wechat:         u.Wechat,
	}
}
