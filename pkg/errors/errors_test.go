package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTTPStatus 验证错误码到HTTP状态码的映射
// 映射必须全覆盖且不重叠：每个预定义错误恰好落入一个状态码
func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  *AppError
		want int
	}{
		{"存储层错误→500", ErrStorageError, http.StatusInternalServerError},
		{"内部错误→500", ErrInternal, http.StatusInternalServerError},
		{"用户不存在→404", ErrUserNotFound, http.StatusNotFound},
		{"手机号已注册→400", ErrTelephoneDuplicate, http.StatusBadRequest},
		{"密码格式→400", ErrPasswordFormat, http.StatusBadRequest},
		{"手机号格式→400", ErrTelephoneFormat, http.StatusBadRequest},
		{"密码不正确→400", ErrInvalidPassword, http.StatusBadRequest},
		{"参数绑定失败→400", ErrBindError, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.HTTPStatus())
		})
	}
}

// TestWrapStorage 存储错误包装后细节不出现在Message中
func TestWrapStorage(t *testing.T) {
	cause := fmt.Errorf("dial tcp 127.0.0.1:3306: connect: connection refused")
	err := WrapStorage(cause, "Database error")

	assert.Equal(t, ErrCodeStorageError, err.Code)
	assert.Equal(t, "Database error", err.Message)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())

	// 内部错误通过Unwrap可达（供日志层使用）
	assert.True(t, errors.Is(err, cause))
}

// TestGetAppError 非AppError被包装为Internal
func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		got := GetAppError(ErrUserNotFound)
		assert.Same(t, ErrUserNotFound, got)
	})

	t.Run("包装后的AppError可提取", func(t *testing.T) {
		wrapped := fmt.Errorf("use case failed: %w", ErrInvalidPassword)
		got := GetAppError(wrapped)
		assert.Equal(t, ErrCodeInvalidPassword, got.Code)
	})

	t.Run("未知错误归为Internal", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))
		require.NotNil(t, got)
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

// TestIsAppError 判断辅助函数
func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrTelephoneFormat))
	assert.True(t, IsAppError(fmt.Errorf("wrap: %w", ErrTelephoneFormat)))
	assert.False(t, IsAppError(errors.New("plain")))
}
