package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/haydnkong/usercenter/internal/application/user"
	"github.com/haydnkong/usercenter/internal/interface/http/dto"
	apperrors "github.com/haydnkong/usercenter/pkg/errors"
	"github.com/haydnkong/usercenter/pkg/response"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 使用依赖注入，便于测试
type UserHandler struct {
	registerUseCase *appuser.RegisterUseCase
	getUseCase      *appuser.GetUserUseCase
	updateUseCase   *appuser.UpdateUserUseCase
	deleteUseCase   *appuser.DeleteUserUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	getUseCase *appuser.GetUserUseCase,
	updateUseCase *appuser.UpdateUserUseCase,
	deleteUseCase *appuser.DeleteUserUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase: registerUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号（手机号全局唯一）
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "注册信息"
// @Success      200 {string} string "Create user successfully"
// @Failure      400 {object} response.ErrorResponse "参数错误/手机号已注册"
// @Failure      500 {object} response.ErrorResponse "服务器错误"
// @Router       /user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	// 1. 绑定参数
	// 学习要点：绑定失败统一返回固定提示，不暴露内部细节
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	// 2. 调用应用层用例
	_, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Name:           req.Name,
		Telephone:      req.Telephone,
		Password:       req.Password,
		Ledger:         req.Ledger,
		SubscriberType: req.SubscriberType,
		Email:          req.Email,
		Wechat:         req.Wechat,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 返回成功响应
	response.Success(c, "Create user successfully")
}

// Get 按手机号查询用户
// @Summary      查询用户
// @Description  按手机号查询用户完整信息
// @Tags         用户
// @Produce      json
// @Param        telephone path string true "手机号"
// @Success      200 {object} appuser.UserResult
// @Failure      404 {object} response.ErrorResponse "用户不存在"
// @Failure      500 {object} response.ErrorResponse "服务器错误"
// @Router       /user/{telephone} [get]
func (h *UserHandler) Get(c *gin.Context) {
	telephone := c.Param("telephone")

	result, err := h.getUseCase.Execute(c.Request.Context(), telephone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 更新用户
// @Summary      更新用户
// @Description  验证旧密码后部分更新用户字段，缺席字段保持不变
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        telephone path string true "手机号"
// @Param        request body dto.UpdateUserRequest true "更新信息"
// @Success      200 {string} string "Update user successfully"
// @Failure      400 {object} response.ErrorResponse "参数错误/密码错误"
// @Failure      404 {object} response.ErrorResponse "用户不存在"
// @Failure      500 {object} response.ErrorResponse "服务器错误"
// @Router       /user/{telephone} [put]
func (h *UserHandler) Update(c *gin.Context) {
	telephone := c.Param("telephone")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	_, err := h.updateUseCase.Execute(c.Request.Context(), telephone, appuser.UpdateRequest{
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
		response.Error(c, err)
		return
	}

	response.Success(c, "Update user successfully")
}

// Delete 删除用户
// @Summary      删除用户
// @Description  验证密码后按手机号删除用户，请求体为JSON字符串形式的密码
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        telephone path string true "手机号"
// @Param        password body string true "当前密码"
// @Success      200 {string} string "Delete user successfully"
// @Failure      400 {object} response.ErrorResponse "参数错误/密码错误"
// @Failure      404 {object} response.ErrorResponse "用户不存在"
// @Failure      500 {object} response.ErrorResponse "服务器错误"
// @Router       /user/{telephone} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	telephone := c.Param("telephone")

	// 请求体是一个裸JSON字符串（如 "123456"），不是对象
	var password string
	if err := c.ShouldBindJSON(&password); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), telephone, password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Delete user successfully")
}
