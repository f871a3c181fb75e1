package user

import (
	"context"

	"github.com/haydnkong/usercenter/internal/domain/user"
)

// UpdateUserUseCase 部分更新用例
type UpdateUserUseCase struct {
	userService user.Service
}

// NewUpdateUserUseCase 创建更新用例
func NewUpdateUserUseCase(userService user.Service) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userService: userService,
	}
}

// Execute 执行更新
// telephone是路径里定位记录的手机号；req里只携带要变更的字段
func (uc *UpdateUserUseCase) Execute(ctx context.Context, telephone string, req UpdateRequest) (*UserResult, error) {
	updated, err := uc.userService.Update(ctx, telephone, user.UpdateUser{
		Name:           req.Name,
		NewTelephone:   req.NewTelephone,
		NewPassword:    req.NewPassword,
		OldPassword:    req.OldPassword,
		Ledger:         req.Ledger,
		SubscriberType: req.SubscriberType,
		Email:          req.Email,
		Wechat:         req.Wechat,
	})
	if err != nil {
		return nil, err
	}

	return toResult(updated), nil
}

// UpdateRequest 更新请求
// 除OldPassword外全部可选：未提供的字段保持原值
type UpdateRequest struct {
	Name           *string
	NewTelephone   *string
	NewPassword    *string
	OldPassword    string
	Ledger         *string
	SubscriberType *string
	Email          *string
	Wechat         *string
}
