package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/haydnkong/usercenter/pkg/errors"
	"github.com/haydnkong/usercenter/pkg/logger"
)

// ErrorResponse 错误响应体
// 设计说明：错误响应只有一个message字段；HTTP状态码表达错误类别
// （400参数/业务、404不存在、500服务端），不在响应体里重复状态码
type ErrorResponse struct {
	Message string `json:"message"`
}

// Success 成功响应（200，payload原样序列化）
// 用法：
//
//	response.Success(c, user)                      // 返回用户记录
//	response.Success(c, "Create user successfully") // 返回确认信息
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应（自动分类AppError）
// 用法：
//
//	if err := useCase.Execute(...); err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 服务端错误的细节只进日志，响应体保持通用提示
	if appErr.Err != nil {
		logger.Error().
			Int("code", appErr.Code).
			Str("path", c.FullPath()).
			Err(appErr.Err).
			Msg(appErr.Message)
	}

	c.JSON(appErr.HTTPStatus(), ErrorResponse{Message: appErr.Message})
}

// ErrorWithStatus 自定义状态码和消息（不经过AppError分类）
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}
