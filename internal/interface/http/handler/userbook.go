package handler

import (
	"github.com/gin-gonic/gin"

	appuserbook "github.com/xiebiao/mybooks/internal/application/userbook"
	"github.com/xiebiao/mybooks/internal/interface/http/dto"
	"github.com/xiebiao/mybooks/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/response"
)

// UserBookHandler 书架HTTP处理器
// 普通用户只能操作自己的书架，admin可以操作任意用户的
type UserBookHandler struct {
	addUseCase    *appuserbook.AddUserBookUseCase
	listUseCase   *appuserbook.ListUserBooksUseCase
	removeUseCase *appuserbook.RemoveUserBookUseCase
}

// NewUserBookHandler 创建书架处理器
func NewUserBookHandler(
	addUseCase *appuserbook.AddUserBookUseCase,
	listUseCase *appuserbook.ListUserBooksUseCase,
	removeUseCase *appuserbook.RemoveUserBookUseCase,
) *UserBookHandler {
	return &UserBookHandler{
		addUseCase:    addUseCase,
		listUseCase:   listUseCase,
		removeUseCase: removeUseCase,
	}
}

// caller 从认证中间件注入的主体构造Caller
func caller(c *gin.Context) appuserbook.Caller {
	p, _ := middleware.GetPrincipal(c)
	return appuserbook.Caller{Name: p.Username, IsAdmin: p.IsAdmin()}
}

// ListUserBooks 书架列表
// @Summary      书架列表
// @Description  查询指定用户的书架；非本人需admin用户组
// @Tags         书架
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "用户名"
// @Param        start query int false "分页起点(0起)"
// @Param        segmentSize query int false "分页大小,缺省取到结尾"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "越权访问"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /users/{name}/books [get]
func (h *UserBookHandler) ListUserBooks(c *gin.Context) {
	var uri dto.NameUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	var req dto.ListUserBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appuserbook.ListUserBooksRequest{
		UserName:    uri.Name,
		Start:       req.Start,
		SegmentSize: req.SegmentSize,
		Caller:      caller(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddUserBook 加入书架
// @Summary      加入书架
// @Description  把图书加入指定用户的书架；非本人需admin用户组
// @Tags         书架
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "用户名"
// @Param        request body dto.AddUserBookRequest true "书架记录"
// @Success      200 {object} response.Response{data=appuserbook.UserBookView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "越权访问"
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Router       /users/{name}/books [post]
func (h *UserBookHandler) AddUserBook(c *gin.Context) {
	var uri dto.NameUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	var req dto.AddUserBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), appuserbook.AddUserBookRequest{
		UserName: uri.Name,
		BookID:   req.BookID,
		Rating:   req.Rating,
		Tags:     req.Tags,
		Caller:   caller(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveUserBook 移出书架
// @Summary      移出书架
// @Description  从指定用户书架删除记录；非本人需admin用户组
// @Tags         书架
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "用户名"
// @Param        id path int true "书架记录ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "越权访问"
// @Failure      404 {object} response.Response "记录不存在"
// @Router       /users/{name}/books/{id} [delete]
func (h *UserBookHandler) RemoveUserBook(c *gin.Context) {
	var uri dto.UserBookUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.removeUseCase.Execute(c.Request.Context(), uri.Name, uri.ID, caller(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
