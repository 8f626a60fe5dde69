package handler

import (
	"github.com/gin-gonic/gin"

	apptag "github.com/xiebiao/mybooks/internal/application/tag"
	"github.com/xiebiao/mybooks/internal/interface/http/dto"
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
	"github.com/xiebiao/mybooks/pkg/response"
)

// TagHandler 标签HTTP处理器
type TagHandler struct {
	listTagsUseCase  *apptag.ListTagsUseCase
	getTagUseCase    *apptag.GetTagUseCase
	createTagUseCase *apptag.CreateTagUseCase
	updateTagUseCase *apptag.UpdateTagUseCase
	deleteTagUseCase *apptag.DeleteTagUseCase
}

// NewTagHandler 创建标签处理器
func NewTagHandler(
	listTagsUseCase *apptag.ListTagsUseCase,
	getTagUseCase *apptag.GetTagUseCase,
	createTagUseCase *apptag.CreateTagUseCase,
	updateTagUseCase *apptag.UpdateTagUseCase,
	deleteTagUseCase *apptag.DeleteTagUseCase,
) *TagHandler {
	return &TagHandler{
		listTagsUseCase:  listTagsUseCase,
		getTagUseCase:    getTagUseCase,
		createTagUseCase: createTagUseCase,
		updateTagUseCase: updateTagUseCase,
		deleteTagUseCase: deleteTagUseCase,
	}
}

// ListTags 标签列表
// @Summary      标签列表
// @Tags         标签
// @Produce      json
// @Security     BearerAuth
// @Param        start query int false "分页起点(0起)"
// @Param        segmentSize query int false "分页大小,缺省取到结尾"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Router       /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	var req dto.PageQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listTagsUseCase.Execute(c.Request.Context(), req.Start, req.SegmentSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetTag 标签详情
// @Summary      标签详情
// @Tags         标签
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "标签ID"
// @Success      200 {object} response.Response{data=apptag.TagView}
// @Failure      401 {object} response.Response "未认证"
// @Failure      404 {object} response.Response "标签不存在"
// @Router       /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.getTagUseCase.Execute(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateTag 创建标签
// @Summary      创建标签
// @Description  仅admin用户组可用
// @Tags         标签
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateTagRequest true "标签信息"
// @Success      200 {object} response.Response{data=apptag.TagView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      409 {object} response.Response "标签已存在"
// @Router       /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createTagUseCase.Execute(c.Request.Context(), req.Name, req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateTag 更新标签
// @Summary      更新标签
// @Description  仅admin用户组可用
// @Tags         标签
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "标签ID"
// @Param        request body dto.UpdateTagRequest true "标签信息"
// @Success      200 {object} response.Response{data=apptag.TagView}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      404 {object} response.Response "标签不存在"
// @Failure      409 {object} response.Response "标签已存在"
// @Router       /tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateTagUseCase.Execute(c.Request.Context(), uri.ID, req.Name, req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteTag 删除标签
// @Summary      删除标签
// @Description  仅admin用户组可用
// @Tags         标签
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "标签ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Failure      403 {object} response.Response "非admin用户组"
// @Failure      404 {object} response.Response "标签不存在"
// @Router       /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	if err := h.deleteTagUseCase.Execute(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
