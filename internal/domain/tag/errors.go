package tag

import (
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// 标签领域错误定义
var (
	// ErrTagNotFound 标签不存在
	ErrTagNotFound = apperrors.ErrTagNotFound

	// ErrTagDuplicate 标签已存在（名称唯一约束冲突）
	ErrTagDuplicate = apperrors.New(apperrors.ErrCodeConflict, "标签已存在")
)
