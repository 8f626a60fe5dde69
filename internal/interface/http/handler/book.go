package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/mybooks/internal/application/book"
	"github.com/xiebiao/mybooks/internal/interface/http/dto"
	"github.com/xiebiao/mybooks/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	createBookUseCase *appbook.CreateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		createBookUseCase: createBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按书名子串、图书ID集合、作者ID集合做并集查询；不带条件返回全部
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        title query string false "书名子串"
// @Param        id query []int false "图书ID集合" collectionFormat(multi)
// @Param        authorId query []int false "作者ID集合" collectionFormat(multi)
// @Param        start query int false "分页起点(0起)"
// @Param        segmentSize query int false "分页大小,缺省取到结尾"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Title:       req.Title,
		IDs:         req.IDs,
		AuthorIDs:   req.AuthorIDs,
		Start:       req.Start,
		SegmentSize: req.SegmentSize,
		AuthHeader:  middleware.GetAuthHeader(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookView}
// @Failure      401 {object} response.Response "未认证"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), uri.ID, middleware.GetAuthHeader(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  仅admin用户组可用
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=appbook.BookView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      409 {object} response.Response "书名已存在"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Year:     req.Year,
		OlWorks:  req.OlWorks,
		Isbns:    req.Isbns,
		Subjects: req.Subjects,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  仅admin用户组可用
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
