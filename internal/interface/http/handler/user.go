package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/mybooks/internal/application/user"
	"github.com/xiebiao/mybooks/internal/interface/http/dto"
	"github.com/xiebiao/mybooks/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/response"
)

// UserHandler 用户管理HTTP处理器（仅admin用户组可用）
type UserHandler struct {
	createUserUseCase *appuser.CreateUserUseCase
	getUserUseCase    *appuser.GetUserUseCase
	listUsersUseCase  *appuser.ListUsersUseCase
	deleteUserUseCase *appuser.DeleteUserUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	createUserUseCase *appuser.CreateUserUseCase,
	getUserUseCase *appuser.GetUserUseCase,
	listUsersUseCase *appuser.ListUsersUseCase,
	deleteUserUseCase *appuser.DeleteUserUseCase,
) *UserHandler {
	return &UserHandler{
		createUserUseCase: createUserUseCase,
		getUserUseCase:    getUserUseCase,
		listUsersUseCase:  listUsersUseCase,
		deleteUserUseCase: deleteUserUseCase,
	}
}

// CreateUser 创建用户
// @Summary      创建用户
// @Description  仅admin用户组可用；user_group缺省为user
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateUserRequest true "用户信息"
// @Success      200 {object} response.Response{data=appuser.UserView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      409 {object} response.Response "用户名已存在"
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUserUseCase.Execute(c.Request.Context(), appuser.CreateUserRequest{
		Name:      req.Name,
		UserGroup: req.UserGroup,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetUser 用户详情
// @Summary      用户详情
// @Description  本人或admin用户组可用
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "用户名"
// @Success      200 {object} response.Response{data=appuser.UserView}
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "既非本人也非admin"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /users/{name} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	var uri dto.NameUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 非admin只能查询本人信息
	p, ok := middleware.GetPrincipal(c)
	if !ok || (p.Username != uri.Name && !p.IsAdmin()) {
		response.Error(c, apperrors.New(apperrors.ErrCodeForbidden, "只能查询本人的用户信息"))
		return
	}

	result, err := h.getUserUseCase.Execute(c.Request.Context(), uri.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListUsers 用户列表
// @Summary      用户列表
// @Description  仅admin用户组可用
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        start query int false "分页起点(0起)"
// @Param        segmentSize query int false "分页大小,缺省取到结尾"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.PageQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), req.Start, req.SegmentSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteUser 删除用户
// @Summary      删除用户
// @Description  仅admin用户组可用
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "用户名"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /users/{name} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var uri dto.NameUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.deleteUserUseCase.Execute(c.Request.Context(), uri.Name); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
