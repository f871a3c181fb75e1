package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/haydnkong/usercenter/pkg/errors"
)

// fakeRepo 内存版Repository，按手机号索引
// 说明：行为与MySQL实现保持一致——查不到返回ErrUserNotFound，
// 插入冲突返回ErrTelephoneDuplicate，删除不存在的行不视为错误
type fakeRepo struct {
	byTel  map[string]User
	nextID uint

	failNext error // 注入一次性的存储故障
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byTel: make(map[string]User), nextID: 1}
}

func (r *fakeRepo) takeFailure() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	if _, ok := r.byTel[u.Telephone]; ok {
		return apperrors.ErrTelephoneDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.byTel[u.Telephone] = *u
	return nil
}

func (r *fakeRepo) FindByTelephone(ctx context.Context, telephone string) (*User, error) {
	if err := r.takeFailure(); err != nil {
		return nil, err
	}
	u, ok := r.byTel[telephone]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeRepo) Replace(ctx context.Context, u *User) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	// 整行覆盖按ID定位：先移除旧键（手机号可能变化）
	for tel, existing := range r.byTel {
		if existing.ID == u.ID {
			delete(r.byTel, tel)
			break
		}
	}
	r.byTel[u.Telephone] = *u
	return nil
}

func (r *fakeRepo) DeleteByTelephone(ctx context.Context, telephone string) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	delete(r.byTel, telephone)
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(repo, NewVerifier("plaintext"))
}

func validCreate() CreateUser {
	return CreateUser{
		Name:           "Ann",
		Telephone:      "18570771568",
		Password:       "secret1",
		Ledger:         "daily",
		SubscriberType: "Not",
	}
}

// TestRegister 注册流程
func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册后可按手机号查到", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		created, err := svc.Register(ctx, validCreate())
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		got, err := svc.GetByTelephone(ctx, "18570771568")
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
		assert.Equal(t, "secret1", got.Password) // 明文方案：存储原样
		assert.Equal(t, "daily", got.Ledger)
		assert.Equal(t, "Not", got.SubscriberType)
		assert.Nil(t, got.Email)
		assert.Nil(t, got.Wechat)
	})

	t.Run("密码不足6位被拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		req := validCreate()
		req.Password = "abcde"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrPasswordFormat)
	})

	t.Run("手机号不是11位被拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		req := validCreate()
		req.Telephone = "12345"
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrTelephoneFormat)
	})

	t.Run("重复手机号被拒绝", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)

		_, err := svc.Register(ctx, validCreate())
		require.NoError(t, err)

		req := validCreate()
		req.Name = "Somebody Else"
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrTelephoneDuplicate)
	})

	t.Run("存在性检查穿透时由存储约束兜底", func(t *testing.T) {
		// 模拟并发注册：存在性检查时还查不到，插入时撞上唯一索引
		repo := newFakeRepo()
		svc := newTestService(repo)
		repo.byTel["18570771568"] = User{ID: 99, Telephone: "18570771568"}
		repo.failNext = apperrors.ErrUserNotFound // 存在性检查"没查到"

		_, err := svc.Register(ctx, validCreate())
		assert.ErrorIs(t, err, apperrors.ErrTelephoneDuplicate)
	})

	t.Run("存在性检查遇到存储故障原样上抛", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		repo.failNext = apperrors.ErrStorageError

		_, err := svc.Register(ctx, validCreate())
		assert.ErrorIs(t, err, apperrors.ErrStorageError)
	})
}

// TestGetByTelephone 查询流程
func TestGetByTelephone(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.GetByTelephone(ctx, "19999999999")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

// TestUpdate 更新流程
func TestUpdate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeRepo, Service) {
		repo := newFakeRepo()
		svc := newTestService(repo)
		_, err := svc.Register(ctx, validCreate())
		require.NoError(t, err)
		return repo, svc
	}

	t.Run("只改名字其余保留", func(t *testing.T) {
		_, svc := seed(t)

		updated, err := svc.Update(ctx, "18570771568", UpdateUser{
			Name:        strptr("Anne"),
			OldPassword: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Anne", updated.Name)
		assert.Equal(t, "secret1", updated.Password)

		got, err := svc.GetByTelephone(ctx, "18570771568")
		require.NoError(t, err)
		assert.Equal(t, "Anne", got.Name)
	})

	t.Run("改手机号后旧键查不到新键查得到", func(t *testing.T) {
		_, svc := seed(t)

		_, err := svc.Update(ctx, "18570771568", UpdateUser{
			NewTelephone: strptr("18111354101"),
			OldPassword:  "secret1",
		})
		require.NoError(t, err)

		_, err = svc.GetByTelephone(ctx, "18570771568")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

		got, err := svc.GetByTelephone(ctx, "18111354101")
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("当前密码不正确被拒绝", func(t *testing.T) {
		_, svc := seed(t)

		_, err := svc.Update(ctx, "18570771568", UpdateUser{
			Name:        strptr("Anne"),
			OldPassword: "wrong66",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

		// 记录未被修改
		got, err := svc.GetByTelephone(ctx, "18570771568")
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("新手机号格式不合法时不落库", func(t *testing.T) {
		_, svc := seed(t)

		_, err := svc.Update(ctx, "18570771568", UpdateUser{
			NewTelephone: strptr("123"),
			OldPassword:  "secret1",
		})
		assert.ErrorIs(t, err, apperrors.ErrTelephoneFormat)

		got, err := svc.GetByTelephone(ctx, "18570771568")
		require.NoError(t, err)
		assert.Equal(t, "18570771568", got.Telephone)
	})

	t.Run("新密码格式不合法被拒绝", func(t *testing.T) {
		_, svc := seed(t)

		_, err := svc.Update(ctx, "18570771568", UpdateUser{
			NewPassword: strptr("123"),
			OldPassword: "secret1",
		})
		assert.ErrorIs(t, err, apperrors.ErrPasswordFormat)
	})

	t.Run("不存在的手机号返回404语义", func(t *testing.T) {
		_, svc := seed(t)

		_, err := svc.Update(ctx, "19999999999", UpdateUser{
			Name:        strptr("Anne"),
			OldPassword: "secret1",
		})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

// TestUpdate_BcryptScheme bcrypt方案下新密码以哈希形态落库
func TestUpdate_BcryptScheme(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, NewVerifier("bcrypt"))

	_, err := svc.Register(ctx, validCreate())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "18570771568", UpdateUser{
		NewPassword: strptr("newsecret"),
		OldPassword: "secret1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "newsecret", updated.Password)

	// 新密码可以通过后续身份确认
	_, err = svc.Update(ctx, "18570771568", UpdateUser{
		Name:        strptr("Anne"),
		OldPassword: "newsecret",
	})
	assert.NoError(t, err)
}

// TestDelete 删除流程
func TestDelete(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) Service {
		svc := newTestService(newFakeRepo())
		_, err := svc.Register(ctx, validCreate())
		require.NoError(t, err)
		return svc
	}

	t.Run("密码正确删除成功后查不到", func(t *testing.T) {
		svc := seed(t)

		err := svc.Delete(ctx, "18570771568", "secret1")
		require.NoError(t, err)

		_, err = svc.GetByTelephone(ctx, "18570771568")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("密码不正确被拒绝且记录保留", func(t *testing.T) {
		svc := seed(t)

		err := svc.Delete(ctx, "18570771568", "wrong66")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

		got, err := svc.GetByTelephone(ctx, "18570771568")
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("格式校验先于存在性检查", func(t *testing.T) {
		svc := seed(t)

		err := svc.Delete(ctx, "18570771568", "abc")
		assert.ErrorIs(t, err, apperrors.ErrPasswordFormat)

		err = svc.Delete(ctx, "123", "secret1")
		assert.ErrorIs(t, err, apperrors.ErrTelephoneFormat)
	})

	t.Run("不存在的手机号返回404语义", func(t *testing.T) {
		svc := seed(t)

		err := svc.Delete(ctx, "19999999999", "secret1")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
