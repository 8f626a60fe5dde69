package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/mybooks/internal/application/author"
	"github.com/xiebiao/mybooks/internal/interface/http/dto"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	listAuthorsUseCase  *appauthor.ListAuthorsUseCase
	getAuthorUseCase    *appauthor.GetAuthorUseCase
	createAuthorUseCase *appauthor.CreateAuthorUseCase
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
	getAuthorUseCase *appauthor.GetAuthorUseCase,
	createAuthorUseCase *appauthor.CreateAuthorUseCase,
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		listAuthorsUseCase:  listAuthorsUseCase,
		getAuthorUseCase:    getAuthorUseCase,
		createAuthorUseCase: createAuthorUseCase,
		deleteAuthorUseCase: deleteAuthorUseCase,
	}
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Description  可按姓名子串过滤，不带条件返回全部
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        name query string false "姓名子串"
// @Param        start query int false "分页起点(0起)"
// @Param        segmentSize query int false "分页大小,缺省取到结尾"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var req dto.ListAuthorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listAuthorsUseCase.Execute(c.Request.Context(), appauthor.ListAuthorsRequest{
		Name:        req.Name,
		Start:       req.Start,
		SegmentSize: req.SegmentSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorView}
// @Failure      401 {object} response.Response "未认证"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.getAuthorUseCase.Execute(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Description  仅admin用户组可用
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=appauthor.AuthorView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      409 {object} response.Response "作者已存在"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		OlKey:       req.OlKey,
		ImageSmall:  req.ImageSmall,
		ImageMedium: req.ImageMedium,
		ImageLarge:  req.ImageLarge,
		Subjects:    req.Subjects,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  仅admin用户组可用
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.deleteAuthorUseCase.Execute(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
