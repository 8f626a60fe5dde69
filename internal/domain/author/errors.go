package author

import (
	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.ErrAuthorNotFound

	// ErrAuthorDuplicate 作者已存在（姓名唯一约束冲突）
	ErrAuthorDuplicate = apperrors.New(apperrors.ErrCodeConflict, "作者已存在")
)
