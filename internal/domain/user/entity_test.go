package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

// TestMerge_NoOp 空变更集合并后记录与原记录完全一致（幂等）
func TestMerge_NoOp(t *testing.T) {
	wechat := "haydn_wx"
	old := User{
		ID:             7,
		Name:           "Ann",
		Telephone:      "18570771568",
		Password:       "secret1",
		Ledger:         "daily",
		SubscriberType: "Not",
		Email:          nil,
		Wechat:         &wechat,
	}

	merged := old.Merge(UpdateUser{OldPassword: "secret1"})

	assert.Equal(t, old.ID, merged.ID)
	assert.Equal(t, old.Name, merged.Name)
	assert.Equal(t, old.Telephone, merged.Telephone)
	assert.Equal(t, old.Password, merged.Password)
	assert.Equal(t, old.Ledger, merged.Ledger)
	assert.Equal(t, old.SubscriberType, merged.SubscriberType)
	assert.Nil(t, merged.Email)
	assert.Equal(t, "haydn_wx", *merged.Wechat)
}

// TestMerge_PartialOverride 提供的字段覆盖，未提供的保留
func TestMerge_PartialOverride(t *testing.T) {
	old := User{
		ID:             1,
		Name:           "Ann",
		Telephone:      "18570771568",
		Password:       "secret1",
		Ledger:         "daily",
		SubscriberType: "Not",
	}

	merged := old.Merge(UpdateUser{
		Name:        strptr("Anne"),
		Ledger:      strptr("business"),
		OldPassword: "secret1",
	})

	assert.Equal(t, "Anne", merged.Name)
	assert.Equal(t, "business", merged.Ledger)
	// 未提供的字段保持原值
	assert.Equal(t, "18570771568", merged.Telephone)
	assert.Equal(t, "secret1", merged.Password)
	assert.Equal(t, "Not", merged.SubscriberType)
}

// TestMerge_OptionalFields email/wechat：显式新值总是覆盖（包括原值缺失的情况）
func TestMerge_OptionalFields(t *testing.T) {
	t.Run("覆盖缺失的email", func(t *testing.T) {
		old := User{Telephone: "18570771568", Email: nil}
		merged := old.Merge(UpdateUser{Email: strptr("ann@example.com")})

		assert.NotNil(t, merged.Email)
		assert.Equal(t, "ann@example.com", *merged.Email)
	})

	t.Run("覆盖已有的wechat", func(t *testing.T) {
		old := User{Telephone: "18570771568", Wechat: strptr("old_wx")}
		merged := old.Merge(UpdateUser{Wechat: strptr("new_wx")})

		assert.Equal(t, "new_wx", *merged.Wechat)
	})

	t.Run("未提供时保留原可选值", func(t *testing.T) {
		old := User{Telephone: "18570771568", Email: strptr("keep@example.com")}
		merged := old.Merge(UpdateUser{})

		assert.Equal(t, "keep@example.com", *merged.Email)
	})
}

// TestMerge_Pure Merge不修改接收者，输出与输入解耦
func TestMerge_Pure(t *testing.T) {
	old := User{Name: "Ann", Email: strptr("ann@example.com")}
	upd := UpdateUser{Name: strptr("Anne"), Email: strptr("anne@example.com")}

	merged := old.Merge(upd)

	// 接收者不变
	assert.Equal(t, "Ann", old.Name)
	assert.Equal(t, "ann@example.com", *old.Email)

	// 输出的可选字段是独立副本，改变更集不影响结果
	*upd.Email = "mutated@example.com"
	assert.Equal(t, "anne@example.com", *merged.Email)

	// 相同输入再次合并得到相同结果
	again := old.Merge(UpdateUser{Name: strptr("Anne"), Email: strptr("anne@example.com")})
	assert.Equal(t, merged.Name, again.Name)
	assert.Equal(t, *merged.Email, *again.Email)
}
