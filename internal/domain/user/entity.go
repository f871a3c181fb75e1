package user

// User 用户实体（聚合根）
// DDD设计说明：
// 1. User是用户聚合的根实体，所有查找/更新/删除都以Telephone为业务主键（ID仅作存储主键）
// 2. Email和Wechat是可选字段，用指针区分"未填写"和"空字符串"
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID             uint
	Name           string
	Telephone      string
	Password       string
	Ledger         string
	SubscriberType string
	Email          *string
	Wechat         *string
}

// CreateUser 注册输入（领域层）
// 字段与User一一对应，校验通过后整体映射为一条新记录
type CreateUser struct {
	Name           string
	Telephone      string
	Password       string
	Ledger         string
	SubscriberType string
	Email          *string
	Wechat         *string
}

// UpdateUser 部分更新的变更集
// 设计说明：
// 1. 每个可改字段用指针表达"提供了新值/未提供"，避免零值歧义
// 2. OldPassword是调用方必须重新提供的当前密码，用于更新前的身份确认
type UpdateUser struct {
	Name           *string
	NewTelephone   *string
	NewPassword    *string
	OldPassword    string
	Ledger         *string
	SubscriberType *string
	Email          *string
	Wechat         *string
}

// Merge 由现有记录和变更集计算更新后的记录
// 合并规则：
// - name/telephone/password/ledger/subscriber_type：提供了新值则取新值，否则保留原值
// - email/wechat：提供了新值则覆盖（包括覆盖原来未填写的情况），否则保留原可选值
// 纯函数：不修改接收者，相同输入永远产生相同输出
func (u User) Merge(upd UpdateUser) User {
	merged := User{
		ID:             u.ID,
		Name:           u.Name,
		Telephone:      u.Telephone,
		Password:       u.Password,
		Ledger:         u.Ledger,
		SubscriberType: u.SubscriberType,
		Email:          u.Email,
		Wechat:         u.Wechat,
	}

	if upd.Name != nil {
		merged.Name = *upd.Name
	}
	if upd.NewTelephone != nil {
		merged.Telephone = *upd.NewTelephone
	}
	if upd.NewPassword != nil {
		merged.Password = *upd.NewPassword
	}
	if upd.Ledger != nil {
		merged.Ledger = *upd.Ledger
	}
	if upd.SubscriberType != nil {
		merged.SubscriberType = *upd.SubscriberType
	}
	if upd.Email != nil {
		email := *upd.Email
		merged.Email = &email
	}
	if upd.Wechat != nil {
		wechat := *upd.Wechat
		merged.Wechat = &wechat
	}

	return merged
}
