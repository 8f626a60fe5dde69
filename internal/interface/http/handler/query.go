package handler

import (
	"github.com/gin-gonic/gin"

	appquery "github.com/xiebiao/mybooks/internal/application/query"
	"github.com/xiebiao/mybooks/internal/interface/http/dto"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/response"
)

// QueryHandler openlibrary.org图书目录查询处理器
type QueryHandler struct {
	queryAuthorsUseCase *appquery.QueryAuthorsUseCase
	queryTitlesUseCase  *appquery.QueryTitlesUseCase
}

// NewQueryHandler 创建目录查询处理器
func NewQueryHandler(
	queryAuthorsUseCase *appquery.QueryAuthorsUseCase,
	queryTitlesUseCase *appquery.QueryTitlesUseCase,
) *QueryHandler {
	return &QueryHandler{
		queryAuthorsUseCase: queryAuthorsUseCase,
		queryTitlesUseCase:  queryTitlesUseCase,
	}
}

// QueryAuthors 作者目录查询
// @Summary      作者目录查询
// @Description  按姓名查询openlibrary.org作者目录，结果按姓名排序，带头像地址
// @Tags         目录查询
// @Produce      json
// @Security     BearerAuth
// @Param        author query string false "作者姓名或片段"
// @Success      200 {object} response.Response{data=[]appquery.AuthorResult}
// @Failure      401 {object} response.Response "未认证"
// @Failure      500 {object} response.Response "上游查询失败"
// @Router       /query/author [get]
func (h *QueryHandler) QueryAuthors(c *gin.Context) {
	var req dto.QueryAuthorRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.queryAuthorsUseCase.Execute(c.Request.Context(), req.Author)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// QueryTitles 书名目录查询
// @Summary      书名目录查询
// @Description  按作者/书名/ISBN查询openlibrary.org书目，ISBN数量多的排前面，带封面地址
// @Tags         目录查询
// @Produce      json
// @Security     BearerAuth
// @Param        author query string false "作者姓名"
// @Param        title query string false "书名"
// @Param        isbn query string false "ISBN"
// @Success      200 {object} response.Response{data=[]appquery.TitleResult}
// @Failure      401 {object} response.Response "未认证"
// @Failure      500 {object} response.Response "上游查询失败"
// @Router       /query/title [get]
func (h *QueryHandler) QueryTitles(c *gin.Context) {
	var req dto.QueryTitleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.queryTitlesUseCase.Execute(c.Request.Context(), appquery.QueryTitlesRequest{
		Author: req.Author,
		Title:  req.Title,
		Isbn:   req.Isbn,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
