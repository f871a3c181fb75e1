package dto

// CreateUserRequest HTTP层注册请求
// 说明：格式校验（密码长度、手机号长度）在domain层统一处理，
// 这里只声明required，保证错误消息口径一致
type CreateUserRequest struct {
	Name           string  `json:"name" binding:"required"`
	Telephone      string  `json:"telephone" binding:"required"`
	Password       string  `json:"password" binding:"required"`
	Ledger         string  `json:"ledger" binding:"required"`
	SubscriberType string  `json:"subscriber_type" binding:"required"`
	Email          *string `json:"email"`
	Wechat         *string `json:"wechat"`
}

// UpdateUserRequest HTTP层更新请求
// 除old_password外所有字段均可选：缺席字段保持原值不变
type UpdateUserRequest struct {
	Name           *string `json:"name"`
	NewTelephone   *string `json:"new_telephone"`
	NewPassword    *string `json:"new_password"`
	OldPassword    string  `json:"old_password" binding:"required"`
	Ledger         *string `json:"ledger"`
	SubscriberType *string `json:"subscriber_type"`
	Email          *string `json:"email"`
	Wechat         *string `json:"wechat"`
}
