package user

import (
	"context"

	"github.com/haydnkong/usercenter/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排，协调领域服务
// 2. 当前注册用例比较简单，只调用一个领域服务
// 3. 未来可能扩展：注册后发送短信验证码、触发事件等
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserResult, error) {
	created, err := uc.userService.Register(ctx, user.CreateUser{
		Name:           req.Name,
		Telephone:      req.Telephone,
		Password:       req.Password,
		Ledger:         req.Ledger,
		SubscriberType: req.SubscriberType,
		Email:          req.Email,
		Wechat:         req.Wechat,
	})
	if err != nil {
		return nil, err
	}

	return toResult(created), nil
}

// =========================================
// 应用层DTO（数据传输对象）
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name           string
	Telephone      string
	Password       string
	Ledger         string
	SubscriberType string
	Email          *string
	Wechat         *string
}

// UserResult 用户记录的应用层视图
// 说明：领域实体不直接暴露给接口层，通过DTO隔离模型变更与API契约
type UserResult struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Telephone      string  `json:"telephone"`
	Password       string  `json:"password"`
	Ledger         string  `json:"ledger"`
	SubscriberType string  `json:"subscriber_type"`
	Email          *string `json:"email"`
	Wechat         *string `json:"wechat"`
}

// toResult 领域实体 → 应用层DTO
func toResult(u *user.User) *UserResult {
	return &UserResult{
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
