package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/mybooks/internal/application/user"
	"github.com/xiebiao/mybooks/internal/interface/http/dto"
	"github.com/xiebiao/mybooks/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/response"
)

// AuthHandler 认证HTTP处理器
type AuthHandler struct {
	loginUseCase  *appuser.LoginUseCase
	logoutUseCase *appuser.LogoutUseCase
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(loginUseCase *appuser.LoginUseCase, logoutUseCase *appuser.LogoutUseCase) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUseCase,
		logoutUseCase: logoutUseCase,
	}
}

// Login 签发Token
// @Summary      用户登录
// @Description  验证用户名密码，签发Bearer Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=appuser.LoginResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "用户名或密码错误"
// @Router       /auth/token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Logout 吊销Token
// @Summary      用户登出
// @Description  删除当前Token对应的会话，Token立刻失效
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Router       /auth/token [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetBearerToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
