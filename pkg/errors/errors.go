package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 业务错误码 → HTTP状态码
// 映射规则（全覆盖、不重叠）：
// - 50000-50099：服务端错误（存储层/请求响应层）→ 500
// - 40400-40499：资源不存在 → 404
// - 其余4xxxx：调用方可纠正的错误 → 400
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 50000 && e.Code < 50100:
		return http.StatusInternalServerError
	case e.Code >= 40400 && e.Code < 40500:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（请求/响应层故障等）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapStorage 包装存储层错误
// 说明：存储失败统一归为一类，不区分"连接断开/约束冲突/超时"，
// 细节只进日志，对外只暴露通用提示
func WrapStorage(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeStorageError,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、请求响应层故障）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal     = 50000 // 内部错误（请求/响应层故障）
	ErrCodeStorageError = 50001 // 存储层错误

	// 业务规则错误（40000-40099）
	ErrCodeTelephoneDuplicate = 40003 // 手机号已注册
	ErrCodePasswordFormat     = 40005 // 密码格式不合法（长度<6）
	ErrCodeTelephoneFormat    = 40006 // 手机号格式不合法（长度≠11）

	// 认证错误（40100-40199）
	ErrCodeInvalidPassword = 40103 // 密码不正确

	// 资源错误（40400-40499）
	ErrCodeUserNotFound = 40401 // 用户不存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误（对外信息固定为通用提示，细节只进日志）
	ErrInternal     = New(ErrCodeInternal, "Internal server error")
	ErrStorageError = New(ErrCodeStorageError, "Database error")

	// 资源不存在
	ErrUserNotFound = New(ErrCodeUserNotFound, "No user found")

	// 业务规则
	ErrTelephoneDuplicate = New(ErrCodeTelephoneDuplicate, "Telephone is already registered")
	ErrPasswordFormat     = New(ErrCodePasswordFormat, "Invalid password format")
	ErrTelephoneFormat    = New(ErrCodeTelephoneFormat, "Invalid telephone format")
	ErrInvalidPassword    = New(ErrCodeInvalidPassword, "Password is NOT correct")

	// 参数错误
	ErrBindError = New(ErrCodeBindError, "Please provide valid Json input")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}
