package user

import (
	"context"

	"github.com/haydnkong/usercenter/internal/domain/user"
)

// DeleteUserUseCase 删除用户用例
type DeleteUserUseCase struct {
	userService user.Service
}

// NewDeleteUserUseCase 创建删除用例
func NewDeleteUserUseCase(userService user.Service) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userService: userService,
	}
}

// Execute 执行删除（需提供当前密码确认身份）
func (uc *DeleteUserUseCase) Execute(ctx context.Context, telephone, password string) error {
	return uc.userService.Delete(ctx, telephone, password)
}
