package user

import (
	"context"

	"github.com/haydnkong/usercenter/internal/domain/user"
)

// GetUserUseCase 按手机号查询用户用例
type GetUserUseCase struct {
	userService user.Service
}

// NewGetUserUseCase 创建查询用例
func NewGetUserUseCase(userService user.Service) *GetUserUseCase {
	return &GetUserUseCase{
		userService: userService,
	}
}

// Execute 执行查询
// 查不到时返回错误（接口层映射为404）
func (uc *GetUserUseCase) Execute(ctx context.Context, telephone string) (*UserResult, error) {
	u, err := uc.userService.GetByTelephone(ctx, telephone)
	if err != nil {
		return nil, err
	}

	return toResult(u), nil
}
