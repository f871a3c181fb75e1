package user

import (
	"context"
	"errors"

	apperrors "github.com/haydnkong/usercenter/pkg/errors"
)

// 格式规则（按业务约定）：
// - 密码最少6位
// - 手机号固定11位（只校验长度，不校验字符集）
const (
	minPasswordLen = 6
	telephoneLen   = 11
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（格式校验、存在性检查、密码确认）
// 2. Service依赖Repository和PasswordVerifier接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
// 4. 每个操作是一次线性流程：校验 → 读取 → 写入，不重试
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, req CreateUser) (*User, error)

	// GetByTelephone 按手机号查询用户
	GetByTelephone(ctx context.Context, telephone string) (*User, error)

	// Update 部分更新（需提供当前密码确认身份）
	Update(ctx context.Context, telephone string, upd UpdateUser) (*User, error)

	// Delete 删除用户（需提供当前密码确认身份）
	Delete(ctx context.Context, telephone, password string) error
}

type service struct {
	repo     Repository
	verifier PasswordVerifier
}

// NewService 创建用户服务
func NewService(repo Repository, verifier PasswordVerifier) Service {
	return &service{repo: repo, verifier: verifier}
}

// Register 用户注册
// 业务规则：
// 1. 密码、手机号格式校验
// 2. 先查一次是否已注册（提前拦截，非正确性保证）
// 3. 手机号唯一性最终由数据库UNIQUE索引保证，
//    并发注册穿过存在性检查时由Repository转换为"已注册"错误
func (s *service) Register(ctx context.Context, req CreateUser) (*User, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := validateTelephone(req.Telephone); err != nil {
		return nil, err
	}

	// 存在性检查：命中即拒绝；查不到继续；存储故障原样上抛
	_, err := s.repo.FindByTelephone(ctx, req.Telephone)
	if err == nil {
		return nil, apperrors.ErrTelephoneDuplicate
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	stored, err := s.verifier.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:           req.Name,
		Telephone:      req.Telephone,
		Password:       stored,
		Ledger:         req.Ledger,
		SubscriberType: req.SubscriberType,
		Email:          req.Email,
		Wechat:         req.Wechat,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return u, nil
}

// GetByTelephone 按手机号查询用户
func (s *service) GetByTelephone(ctx context.Context, telephone string) (*User, error) {
	return s.repo.FindByTelephone(ctx, telephone)
}

// Update 部分更新
// 业务规则：
// 1. 提供了新密码/新手机号时先做格式校验（未提供则跳过）
// 2. 按手机号读取现有记录，不存在即404
// 3. 比对请求中的当前密码与存储密码，不匹配即拒绝
// 4. Merge计算新记录后整行覆盖写回
// 注意：读取与写回之间没有事务或版本号，并发修改不会被检测
func (s *service) Update(ctx context.Context, telephone string, upd UpdateUser) (*User, error) {
	if upd.NewPassword != nil {
		if err := validatePassword(*upd.NewPassword); err != nil {
			return nil, err
		}
	}
	if upd.NewTelephone != nil {
		if err := validateTelephone(*upd.NewTelephone); err != nil {
			return nil, err
		}
	}

	old, err := s.repo.FindByTelephone(ctx, telephone)
	if err != nil {
		return nil, err
	}

	if err := s.verifier.Verify(old.Password, upd.OldPassword); err != nil {
		return nil, err
	}

	// 新密码在合并前转为存储形态，Merge本身不关心密码方案
	if upd.NewPassword != nil {
		stored, err := s.verifier.Hash(*upd.NewPassword)
		if err != nil {
			return nil, err
		}
		upd.NewPassword = &stored
	}

	merged := old.Merge(upd)

	if err := s.repo.Replace(ctx, &merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

// Delete 删除用户
// 业务规则：密码和手机号先过格式校验，再读取记录比对密码，最后删除
func (s *service) Delete(ctx context.Context, telephone, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	if err := validateTelephone(telephone); err != nil {
		return err
	}

	u, err := s.repo.FindByTelephone(ctx, telephone)
	if err != nil {
		return err
	}

	if err := s.verifier.Verify(u.Password, password); err != nil {
		return err
	}

	return s.repo.DeleteByTelephone(ctx, telephone)
}

// =========================================
// 辅助函数：格式校验
// =========================================

// validatePassword 密码长度校验（最少6位）
func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return apperrors.ErrPasswordFormat
	}
	return nil
}

// validateTelephone 手机号长度校验（固定11位）
// 注意：只校验长度不校验数字，沿用既有业务约定
func validateTelephone(telephone string) error {
	if len(telephone) != telephoneLen {
		return apperrors.ErrTelephoneFormat
	}
	return nil
}
